package shell_test

import (
	"testing"

	"hotel/internal/dashboard/shell"

	"github.com/stretchr/testify/assert"
)

func active(nav []shell.Section) []string {
	var titles []string

	for _, section := range nav {
		for _, item := range section.Items {
			if item.Active {
				titles = append(titles, item.Title)
			}
		}
	}

	return titles
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{path: "/dashboard", want: []string{"Dashboard"}},
		{path: "/dashboard/", want: []string{"Dashboard"}},
		{path: "/dashboard/bookings", want: []string{"Bookings"}},
		{path: "/dashboard/bookings/42", want: []string{"Bookings"}},
		{path: "/dashboard/rooms", want: []string{"Rooms"}},
		{path: "/dashboard/website/about", want: []string{"About"}},
		{path: "/dashboard/roomsx", want: []string{"Dashboard"}},
		{path: "/about", want: nil},
		{path: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, active(shell.Navigation(tt.path)))
		})
	}
}

func TestNavigationDoesNotLeakState(t *testing.T) {
	shell.Navigation("/dashboard/rooms")

	assert.Equal(t, []string{"Bookings"}, active(shell.Navigation("/dashboard/bookings")))
}
