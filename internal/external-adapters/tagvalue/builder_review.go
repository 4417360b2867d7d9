package tagvalue

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ochairo/spdxtv/internal/domain/entities"
	"github.com/ochairo/spdxtv/internal/external-adapters/isodate"
)

var elementRefPattern = regexp.MustCompile(`^(DocumentRef-[A-Za-z0-9+.\-]+:)?SPDXRef-[A-Za-z0-9+.\-]+$`)

// AddReviewer starts a new review
func (b *Builder) AddReviewer(value string) error {
	c, err := entities.ParseCreator(value)
	if err != nil {
		b.review = -1
		return valueError("Review::Reviewer", err)
	}
	b.doc.Reviews = append(b.doc.Reviews, &entities.Review{Reviewer: c})
	b.review = len(b.doc.Reviews) - 1
	b.reviewState = reviewFlags{}
	return nil
}

func (b *Builder) currentReview(field string) (*entities.Review, error) {
	if b.review < 0 || b.review >= len(b.doc.Reviews) {
		return nil, orderError(field, "Reviewer")
	}
	return b.doc.Reviews[b.review], nil
}

// SetReviewDate sets the current review's date
func (b *Builder) SetReviewDate(value string) error {
	const field = "Review::Date"
	r, err := b.currentReview(field)
	if err != nil {
		return err
	}
	if b.reviewState.date {
		return cardinalityError(field)
	}
	t, err := isodate.Parse(value)
	if err != nil {
		return valueError(field, err)
	}
	r.Date = t
	b.reviewState.date = true
	return nil
}

// SetReviewComment sets the current review's comment
func (b *Builder) SetReviewComment(value string) error {
	const field = "Review::Comment"
	r, err := b.currentReview(field)
	if err != nil {
		return err
	}
	if b.reviewState.comment {
		return cardinalityError(field)
	}
	r.Comment = value
	b.reviewState.comment = true
	return nil
}

// AddAnnotator starts a new annotation
func (b *Builder) AddAnnotator(value string) error {
	c, err := entities.ParseCreator(value)
	if err != nil {
		b.annotation = -1
		return valueError("Annotation::Annotator", err)
	}
	b.doc.Annotations = append(b.doc.Annotations, &entities.Annotation{Annotator: c})
	b.annotation = len(b.doc.Annotations) - 1
	b.annotationState = annotationFlags{}
	return nil
}

func (b *Builder) currentAnnotation(field string) (*entities.Annotation, error) {
	if b.annotation < 0 || b.annotation >= len(b.doc.Annotations) {
		return nil, orderError(field, "Annotator")
	}
	return b.doc.Annotations[b.annotation], nil
}

// SetAnnotationDate sets the current annotation's date
func (b *Builder) SetAnnotationDate(value string) error {
	const field = "Annotation::Date"
	a, err := b.currentAnnotation(field)
	if err != nil {
		return err
	}
	if b.annotationState.date {
		return cardinalityError(field)
	}
	t, err := isodate.Parse(value)
	if err != nil {
		return valueError(field, err)
	}
	a.Date = t
	b.annotationState.date = true
	return nil
}

// SetAnnotationComment sets the current annotation's comment
func (b *Builder) SetAnnotationComment(value string) error {
	const field = "Annotation::Comment"
	a, err := b.currentAnnotation(field)
	if err != nil {
		return err
	}
	if b.annotationState.comment {
		return cardinalityError(field)
	}
	a.Comment = value
	b.annotationState.comment = true
	return nil
}

// SetAnnotationType sets REVIEW or OTHER
func (b *Builder) SetAnnotationType(value string) error {
	const field = "Annotation::AnnotationType"
	a, err := b.currentAnnotation(field)
	if err != nil {
		return err
	}
	if b.annotationState.kind {
		return cardinalityError(field)
	}
	switch t := entities.AnnotationType(strings.TrimSpace(value)); t {
	case entities.AnnotationReview, entities.AnnotationOther:
		a.Type = t
		b.annotationState.kind = true
		return nil
	default:
		return valueError(field, fmt.Errorf("%q is not REVIEW or OTHER", value))
	}
}

// SetAnnotationSPDXID sets the element the current annotation refers to
func (b *Builder) SetAnnotationSPDXID(value string) error {
	const field = "Annotation::SPDXREF"
	a, err := b.currentAnnotation(field)
	if err != nil {
		return err
	}
	if b.annotationState.spdxRef {
		return cardinalityError(field)
	}
	if !elementRefPattern.MatchString(value) {
		return valueError(field, fmt.Errorf("%q is not an SPDX element reference", value))
	}
	a.SPDXID = value
	b.annotationState.spdxRef = true
	return nil
}
