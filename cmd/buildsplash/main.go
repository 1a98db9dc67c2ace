// Command buildsplash composites LaunchLogo.png from the exact IconKitchen
// app icon plus the "Checkpoint" label. Deterministic: same icon bytes and
// font environment give the same output bytes.
//
// No flags or environment variables; run from anywhere in the repo:
//
//	go run ./cmd/buildsplash
package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/checkpoint-mobile/splashgen"
	"github.com/checkpoint-mobile/splashgen/utils"
)

// Output lands in the asset catalog referenced by UIImageName in Info.plist.
const (
	iconRelPath = "resources/IconKitchen-Output/ios/AppIcon~ios-marketing.png"
	outRelPath  = "resources/Assets.xcassets/LaunchLogo.imageset/LaunchLogo.png"
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

	opt := splashgen.DefaultOptions()
	face := splashgen.ResolveFace(splashgen.DefaultFontCandidates(), opt.TextSize)
	out := splashgen.NewComposer(icon, face, opt).Compose()

	if err := utils.SaveImage(out, outPath); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Saved", outPath)
}
