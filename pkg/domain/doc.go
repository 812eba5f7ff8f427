// Package domain contains the core types shared by the classifier, the
// harness and the API: triangles, their labels and the records that pair a
// case identifier with a triangle. They carry no infrastructure concerns.
package domain
