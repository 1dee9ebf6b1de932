// Package themes exposes the brand theming boundary: each business unit maps
// to a set of CSS custom properties the UI injects at runtime. The service
// only serves the registry; all styling happens client-side.
package themes

// Theme is one brand's identity.
type Theme struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Variables map[string]string `json:"variables"`
}

var brands = []Theme{
	{
		ID:   "access-hire",
		Name: "Access Hire Australia",
		Variables: map[string]string{
			"--color-primary":            "#f97316",
			"--color-primary-hover":      "#ea580c",
			"--color-primary-foreground": "#ffffff",
			"--color-background":         "#fafaf9",
			"--color-foreground":         "#1c1917",
			"--color-header":             "#1c1917",
			"--color-header-foreground":  "#fafaf9",
			"--color-border":             "#e7e5e4",
			"--radius":                   "0.5rem",
		},
	},
	{
		ID:   "access-express",
		Name: "Access Express",
		Variables: map[string]string{
			"--color-primary":            "#dc2626",
			"--color-primary-hover":      "#b91c1c",
			"--color-primary-foreground": "#ffffff",
			"--color-background":         "#ffffff",
			"--color-foreground":         "#171717",
			"--color-header":             "#dc2626",
			"--color-header-foreground":  "#ffffff",
			"--color-border":             "#e5e5e5",
			"--radius":                   "0.25rem",
		},
	},
	{
		ID:   "blue-corp",
		Name: "Blue Corp",
		Variables: map[string]string{
			"--color-primary":            "#2563eb",
			"--color-primary-hover":      "#1d4ed8",
			"--color-primary-foreground": "#ffffff",
			"--color-background":         "#f8fafc",
			"--color-foreground":         "#0f172a",
			"--color-header":             "#1e3a5f",
			"--color-header-foreground":  "#f8fafc",
			"--color-border":             "#e2e8f0",
			"--radius":                   "0.5rem",
		},
	},
	{
		ID:   "green-solutions",
		Name: "Green Solutions",
		Variables: map[string]string{
			"--color-primary":            "#16a34a",
			"--color-primary-hover":      "#15803d",
			"--color-primary-foreground": "#ffffff",
			"--color-background":         "#f7fdf9",
			"--color-foreground":         "#14532d",
			"--color-header":             "#14532d",
			"--color-header-foreground":  "#f7fdf9",
			"--color-border":             "#dcfce7",
			"--radius":                   "0.75rem",
		},
	},
}

// Brands returns every registered theme.
func Brands() []Theme {
	out := make([]Theme, len(brands))
	copy(out, brands)
	return out
}

// Get looks up a brand by id.
func Get(id string) (Theme, bool) {
	for _, b := range brands {
		if b.ID == id {
			return b, true
		}
	}
	return Theme{}, false
}
