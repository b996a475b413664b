package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route pattern and method.
// Skip marks public endpoints. An empty role list admits any authenticated user.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	return strings.ToUpper(method) + " " + path
}

// FindPermissions looks up a chi route pattern such as /v1/bookings/{id}.
// A trailing slash is ignored.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[key(path, method)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		k := key(endpoint.Path, endpoint.Method)
		if _, exists := r.index[k]; exists {
			log.Warn().Str("endpoint", k).Msg("Duplicate permission entry, keeping the first")

			continue
		}

		r.index[k] = endpoint
	}
}

// Get decodes the embedded permission table. It returns nil when the table is malformed,
// which makes the RBAC middleware deny every protected request.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}
