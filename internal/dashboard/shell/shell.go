// Package shell describes the dashboard sidebar.
package shell

import "strings"

type Item struct {
	Title  string `json:"title"`
	Route  string `json:"route"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

func sections() []Section {
	return []Section{
		{
			Title: "Overview",
			Items: []Item{
				{Title: "Dashboard", Route: "/dashboard", Icon: "layout-dashboard"},
			},
		},
		{
			Title: "Management",
			Items: []Item{
				{Title: "Bookings", Route: "/dashboard/bookings", Icon: "calendar-days"},
				{Title: "Rooms", Route: "/dashboard/rooms", Icon: "bed-double"},
			},
		},
		{
			Title: "Website",
			Items: []Item{
				{Title: "About", Route: "/dashboard/website/about", Icon: "info"},
			},
		},
	}
}

// Navigation returns the sidebar with the item matching path marked active.
// The longest matching route wins, so /dashboard/bookings/42 activates Bookings and not Dashboard.
func Navigation(path string) []Section {
	nav := sections()
	path = strings.TrimSuffix(path, "/")

	bestSection, bestItem, bestLen := -1, -1, 0

	for i, section := range nav {
		for j, item := range section.Items {
			if matches(path, item.Route) && len(item.Route) > bestLen {
				bestSection, bestItem, bestLen = i, j, len(item.Route)
			}
		}
	}

	if bestSection >= 0 {
		nav[bestSection].Items[bestItem].Active = true
	}

	return nav
}

func matches(path, route string) bool {
	return path == route || strings.HasPrefix(path, route+"/")
}
