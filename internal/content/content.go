// Package content serves the static marketing pages compiled into the binary.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed about.json
var aboutJSON []byte

type Story struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
}

type Amenity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Member struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Award struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   int    `json:"year"`
}

type About struct {
	Story     Story     `json:"story"`
	Amenities []Amenity `json:"amenities"`
	Team      []Member  `json:"team"`
	Awards    []Award   `json:"awards"`
}

var (
	about     About
	aboutErr  error
	aboutOnce sync.Once
)

// GetAbout decodes the embedded About page on first use.
func GetAbout() (About, error) {
	aboutOnce.Do(func() {
		if err := json.Unmarshal(aboutJSON, &about); err != nil {
			aboutErr = fmt.Errorf("failed to decode about page: %w", err)
		}
	})

	return about, aboutErr
}
