// Command splashpalette extracts the dominant palette of the app icon and
// writes it as a swatch strip next to the other generated assets. The
// brightest entry is printed as an accent color suggestion for UI tinting.
//
//	go run ./cmd/splashpalette
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/checkpoint-mobile/splashgen/utils"
)

const (
	iconRelPath = "resources/IconKitchen-Output/ios/AppIcon~ios-marketing.png"
	outRelPath  = "resources/palette.png"
	paletteSize = 5
)

func main() {
	root, err := utils.RepoRoot()
	if err != nil {
		log.Fatal(err)
	}
	iconPath := filepath.Join(root, filepath.FromSlash(iconRelPath))
	outPath := filepath.Join(root, filepath.FromSlash(outRelPath))

	icon, err := utils.ReadImage(iconPath)
	if err != nil {
		log.Fatal(err)
	}

	palette := utils.ExtractPalette(icon, paletteSize, utils.PaletteMethodDominantColor)
	if len(palette) == 0 {
		log.Fatal("no palette extracted")
	}
	utils.SortPaletteByBrightness(palette)

	if err := utils.SavePalette(palette, 64, outPath); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Accent candidate:", palette[len(palette)-1].Hex())
	fmt.Println("Saved", outPath)
}
