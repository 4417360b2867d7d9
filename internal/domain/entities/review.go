package entities

import "time"

// Review is a reviewer's sign-off on the document
type Review struct {
	Reviewer Creator
	Date     time.Time
	Comment  string
}

// AnnotationType classifies an annotation
type AnnotationType string

const (
	// AnnotationReview marks an annotation made during review
	AnnotationReview AnnotationType = "REVIEW"
	// AnnotationOther marks any other annotation
	AnnotationOther AnnotationType = "OTHER"
)

// Annotation is a comment attached to an SPDX element
type Annotation struct {
	Annotator Creator
	Date      time.Time
	Comment   string
	Type      AnnotationType
	SPDXID    string
}
