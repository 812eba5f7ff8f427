package classifier

import "triangle/pkg/domain"

//go:generate mockgen -package mockclassifier -source=interface.go -destination=mock/mockclassifier.go *
type Classifier interface {
	Classify(t domain.Triangle) domain.Label
}
