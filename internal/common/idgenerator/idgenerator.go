// Package idgenerator produces external identifiers composed of an optional
// prefix, a millisecond timestamp and a base64url-encoded UUID. The
// timestamp prefix keeps ids roughly sortable by creation time.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct{}

func New() Generator {
	return &IDGenerator{}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	id := uuid.New()
	suffix := base64.RawURLEncoding.EncodeToString(id[:])
	if prefix == "" {
		return fmt.Sprintf("%d%s", time.Now().UnixMilli(), suffix)
	}
	return fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixMilli(), suffix)
}
