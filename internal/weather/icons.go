package weather

import "strconv"

// defaultIcon is shown for condition codes the table does not know.
const defaultIcon = "🌤️"

// iconGroups maps wttr.in numeric condition codes to display glyphs.
var iconGroups = []struct {
	icon  string
	codes []int
}{
	{"☀️", []int{113}},
	{"⛅", []int{116}},
	{"☁️", []int{119, 122}},
	{"🌧️", []int{176, 263, 266, 293, 296, 299, 302, 305, 308, 311, 314, 353, 356, 359}},
	{"🌨️", []int{179, 182, 185, 281, 284, 317, 320, 323, 326, 329, 332, 335, 338, 350, 362, 365, 368, 371, 374, 377}},
	{"⛈️", []int{200, 386, 389, 392, 395}},
	{"🌫️", []int{143, 248, 260}},
}

var iconByCode = buildIconTable()

func buildIconTable() map[int]string {
	table := make(map[int]string)
	for _, group := range iconGroups {
		for _, code := range group.codes {
			table[code] = group.icon
		}
	}
	return table
}

// iconForCode resolves a condition code string to its glyph, falling back
// to the default for unknown or non-numeric codes.
func iconForCode(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return defaultIcon
	}
	if icon, ok := iconByCode[n]; ok {
		return icon
	}
	return defaultIcon
}
