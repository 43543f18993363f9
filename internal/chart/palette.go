package chart

// Qualitative color palettes keyed by name. Hex values follow the CARTO
// qualitative sets the dashboard has always used.
var palettes = map[string][]string{
	"Bold": {
		"#7F3C8D", "#11A579", "#3969AC", "#F2B701", "#E73F74",
		"#80BA5A", "#E68310", "#008695", "#CF1C90", "#F97B72",
	},
	"Pastel": {
		"#66C5CC", "#F6CF71", "#F89C74", "#DCB0F2", "#87C55F",
		"#9EB9F3", "#FE88B1", "#C9DB74", "#8BE0A4", "#B497E7",
	},
	"Safe": {
		"#88CCEE", "#CC6677", "#DDCC77", "#117733", "#332288",
		"#AA4499", "#44AA99", "#999933", "#882255", "#661100",
	},
	"Prism": {
		"#5F4690", "#1D6996", "#38A6A5", "#0F8554", "#73AF48",
		"#EDAD08", "#E17C05", "#CC503E", "#94346E", "#6F4070",
	},
	"Vivid": {
		"#E58606", "#5D69B1", "#52BCA3", "#99C945", "#CC61B0",
		"#24796C", "#DAA51B", "#2F8AC4", "#764E9F", "#ED645A",
	},
}

// PaletteColors returns the hex colors for a named palette, cycling is the
// caller's concern. Unknown names fall back to Bold.
func PaletteColors(name string) []string {
	if colors, ok := palettes[name]; ok {
		return colors
	}
	return palettes["Bold"]
}
