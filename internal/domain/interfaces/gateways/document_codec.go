package gateways

import (
	"context"
	"io"

	"github.com/ochairo/spdxtv/internal/domain/entities"
)

// DocumentDecoder turns serialized SPDX text into a document
type DocumentDecoder interface {
	Decode(ctx context.Context, r io.Reader) (*entities.ParseResult, error)
}

// DocumentEncoder serializes a document
type DocumentEncoder interface {
	Encode(w io.Writer, doc *entities.Document) error
}
