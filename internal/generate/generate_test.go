package generate

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jamestiotio/iconforge/internal/catalog"
	"github.com/jamestiotio/iconforge/internal/params"
)

// writePNG creates a solid-colour PNG at path for use as test input.
func writePNG(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	fill(img, c)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func testJob(t *testing.T, modes ...string) *Job {
	t.Helper()

	dir := t.TempDir()
	icon := filepath.Join(dir, "icon.png")
	writePNG(t, icon, 64, 64, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})

	return &Job{
		Icon:                  icon,
		Output:                filepath.Join(dir, "out"),
		Quality:               5,
		Padding:               [2]int{0, 0},
		ThemeColor:            "#1976D2",
		PngColor:              "#000000",
		SplashscreenColor:     "#FFFFFF",
		SvgColor:              "#CC0033",
		SplashscreenIconRatio: 40,
		Modes:                 modes,
	}
}

func TestRunProducesCatalogueAssets(t *testing.T) {
	job := testJob(t, "spa")

	manifest, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	want := catalog.Targets("spa")
	if len(manifest.Assets) != len(want) {
		t.Fatalf("Run() produced %d assets, want %d", len(manifest.Assets), len(want))
	}

	for _, target := range want {
		path := filepath.Join(job.Output, "spa", target.Name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing asset %s: %v", target.Name, err)
		}
	}

	if _, err := os.Stat(filepath.Join(job.Output, ManifestName)); err != nil {
		t.Errorf("missing manifest: %v", err)
	}
}

func TestRunFilterRestrictsGenerators(t *testing.T) {
	job := testJob(t, "spa")
	job.Filter = "ico"

	manifest, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(manifest.Assets) != 1 {
		t.Fatalf("Run() with ico filter produced %d assets, want 1", len(manifest.Assets))
	}
	if manifest.Assets[0].Generator != "ico" {
		t.Errorf("asset generator = %q, want %q", manifest.Assets[0].Generator, "ico")
	}
}

func TestRunStepCallback(t *testing.T) {
	job := testJob(t, "bex")

	var steps []string
	manifest, err := Run(job, func(name string) { steps = append(steps, name) })
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(steps) != len(manifest.Assets) {
		t.Errorf("step callback fired %d times, want %d", len(steps), len(manifest.Assets))
	}
}

func TestRunAssetsExtendModes(t *testing.T) {
	job := testJob(t, "bex")
	job.Assets = []string{"capacitor"}

	manifest, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	wantModes := []string{"bex", "capacitor"}
	if len(manifest.Modes) != len(wantModes) {
		t.Fatalf("manifest modes = %v, want %v", manifest.Modes, wantModes)
	}
	for i, m := range wantModes {
		if manifest.Modes[i] != m {
			t.Errorf("manifest modes = %v, want %v", manifest.Modes, wantModes)
			break
		}
	}
}

func TestCountMatchesRun(t *testing.T) {
	job := testJob(t, "spa", "electron")

	manifest, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if n := Count(job); n != len(manifest.Assets) {
		t.Errorf("Count() = %d, Run produced %d assets", n, len(manifest.Assets))
	}
}

func TestManifestCheckDetectsTampering(t *testing.T) {
	job := testJob(t, "bex")

	manifest, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if stale := manifest.Check(job.Output); len(stale) != 0 {
		t.Fatalf("Check() on fresh run reported stale assets: %v", stale)
	}

	victim := filepath.Join(job.Output, manifest.Assets[0].Path)
	if err := os.WriteFile(victim, []byte("tampered"), 0o644); err != nil {
		t.Fatalf("tampering with asset: %v", err)
	}

	stale := manifest.Check(job.Output)
	if len(stale) != 1 || stale[0] != manifest.Assets[0].Path {
		t.Errorf("Check() = %v, want [%s]", stale, manifest.Assets[0].Path)
	}
}

func TestReadManifestRoundTrip(t *testing.T) {
	job := testJob(t, "bex")

	written, err := Run(job, nil)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	read, err := ReadManifest(job.Output)
	if err != nil {
		t.Fatalf("ReadManifest() error: %v", err)
	}

	if len(read.Assets) != len(written.Assets) {
		t.Errorf("ReadManifest() has %d assets, want %d", len(read.Assets), len(written.Assets))
	}
	if read.Icon != written.Icon {
		t.Errorf("ReadManifest() icon = %q, want %q", read.Icon, written.Icon)
	}
}

func TestICOContainerLayout(t *testing.T) {
	job := testJob(t, "spa")
	src := &Source{Icon: image.NewNRGBA(image.Rect(0, 0, 64, 64))}

	data, err := icoGenerator{}.Generate(job, src, catalog.Target{Name: "favicon.ico", Generator: "ico", Width: 48, Height: 48})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var reserved, imgType, count uint16
	r := bytes.NewReader(data)
	binary.Read(r, binary.LittleEndian, &reserved)
	binary.Read(r, binary.LittleEndian, &imgType)
	binary.Read(r, binary.LittleEndian, &count)

	if reserved != 0 || imgType != 1 {
		t.Errorf("ICONDIR = (%d, %d), want (0, 1)", reserved, imgType)
	}
	if count != 3 { // 16, 32, 48
		t.Fatalf("image count = %d, want 3", count)
	}

	// The first payload must be a decodable PNG at the recorded offset.
	entry := make([]byte, 16)
	if _, err := r.Read(entry); err != nil {
		t.Fatalf("reading first entry: %v", err)
	}
	size := binary.LittleEndian.Uint32(entry[8:12])
	offset := binary.LittleEndian.Uint32(entry[12:16])

	img, err := png.Decode(bytes.NewReader(data[offset : offset+size]))
	if err != nil {
		t.Fatalf("decoding first embedded image: %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("first embedded image width = %d, want 16", img.Bounds().Dx())
	}
}

func TestICNSContainerLayout(t *testing.T) {
	job := testJob(t, "electron")
	src := &Source{Icon: image.NewNRGBA(image.Rect(0, 0, 64, 64))}

	data, err := icnsGenerator{}.Generate(job, src, catalog.Target{Name: "icon.icns", Generator: "icns", Width: 512, Height: 512})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if string(data[:4]) != "icns" {
		t.Fatalf("magic = %q, want %q", data[:4], "icns")
	}
	if total := binary.BigEndian.Uint32(data[4:8]); int(total) != len(data) {
		t.Errorf("recorded length = %d, file length = %d", total, len(data))
	}

	// First chunk should be the 16px type with a decodable PNG payload.
	if code := string(data[8:12]); code != "icp4" {
		t.Errorf("first chunk type = %q, want %q", code, "icp4")
	}
	chunkLen := binary.BigEndian.Uint32(data[12:16])
	if _, err := png.Decode(bytes.NewReader(data[16 : 8+chunkLen])); err != nil {
		t.Errorf("decoding first chunk payload: %v", err)
	}
}

func TestSplashscreenBackdropColour(t *testing.T) {
	job := testJob(t, "cordova")
	job.SplashscreenIconRatio = 0 // backdrop only

	src := &Source{Icon: image.NewNRGBA(image.Rect(0, 0, 64, 64))}
	data, err := splashscreenGenerator{}.Generate(job, src, catalog.Target{Width: 100, Height: 200})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding splashscreen: %v", err)
	}

	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 200 {
		t.Errorf("dimensions = %dx%d, want 100x200", img.Bounds().Dx(), img.Bounds().Dy())
	}

	r, g, b, _ := img.At(50, 100).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || b>>8 != 0xff {
		t.Errorf("centre pixel = (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}
}

func TestSplashscreenBackgroundImageCovers(t *testing.T) {
	dir := t.TempDir()
	bg := filepath.Join(dir, "bg.png")
	writePNG(t, bg, 200, 100, color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff})

	job := testJob(t, "cordova")
	job.Background = bg
	job.SplashscreenIconRatio = 0

	src, err := loadSource(job)
	if err != nil {
		t.Fatalf("loadSource() error: %v", err)
	}

	data, err := splashscreenGenerator{}.Generate(job, src, catalog.Target{Width: 100, Height: 200})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding splashscreen: %v", err)
	}

	// Cover scaling leaves no backdrop showing through.
	_, g, _, _ := img.At(50, 100).RGBA()
	if g>>8 < 0xf0 {
		t.Errorf("centre pixel green = %d, want near 255", g>>8)
	}
}

func TestSVGEmbedsColourAndImage(t *testing.T) {
	job := testJob(t, "spa")
	src := &Source{Icon: image.NewNRGBA(image.Rect(0, 0, 64, 64))}

	data, err := svgGenerator{}.Generate(job, src, catalog.Target{Width: 512, Height: 512})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for _, want := range []string{`fill="#CC0033"`, "data:image/png;base64,", `viewBox="0 0 512 512"`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestCompressionMapping(t *testing.T) {
	tests := []struct {
		quality int
		want    png.CompressionLevel
	}{
		{1, png.BestSpeed},
		{4, png.BestSpeed},
		{5, png.DefaultCompression},
		{8, png.DefaultCompression},
		{9, png.BestCompression},
		{12, png.BestCompression},
	}

	for _, tt := range tests {
		if got := compression(tt.quality); got != tt.want {
			t.Errorf("compression(%d) = %v, want %v", tt.quality, got, tt.want)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#1976D2", want: color.NRGBA{R: 0x19, G: 0x76, B: 0xD2, A: 0xff}},
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "1976D2", want: color.NRGBA{R: 0x19, G: 0x76, B: 0xD2, A: 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseColour(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseColour(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColour(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColour(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFitInside(t *testing.T) {
	tests := []struct {
		sw, sh, bw, bh int
		wantW, wantH   int
	}{
		{64, 64, 128, 128, 128, 128}, // square upscale
		{64, 64, 128, 64, 64, 64},    // height-bound
		{200, 100, 100, 100, 100, 50},
		{100, 200, 100, 100, 50, 100},
		{0, 0, 100, 100, 1, 1}, // degenerate source
	}

	for _, tt := range tests {
		w, h := fitInside(tt.sw, tt.sh, tt.bw, tt.bh)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitInside(%d, %d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.sw, tt.sh, tt.bw, tt.bh, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestScaleIntoPaddingInsets(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	fill(src, color.NRGBA{R: 0xff, A: 0xff})

	img := scaleInto(src, 100, 100, [2]int{20, 20})

	// Padding band stays transparent; the content box is opaque.
	if _, _, _, a := img.At(5, 50).RGBA(); a != 0 {
		t.Errorf("padding band pixel alpha = %d, want 0", a)
	}
	if _, _, _, a := img.At(50, 50).RGBA(); a == 0 {
		t.Errorf("content pixel alpha = 0, want opaque")
	}
}

func TestJobFromRecord(t *testing.T) {
	rec := params.Record{
		"icon":                  "/tmp/icon.png",
		"output":                "/tmp/out",
		"quality":               7,
		"padding":               []int{10, 20},
		"themeColor":            "#1976D2",
		"pngColor":              "#000000",
		"splashscreenColor":     "#FFFFFF",
		"svgColor":              "#CC0033",
		"splashscreenIconRatio": 40.0,
		"mode":                  []string{"spa"},
		"assets":                []string{},
	}

	job, err := JobFromRecord(rec)
	if err != nil {
		t.Fatalf("JobFromRecord() error: %v", err)
	}

	if job.Quality != 7 {
		t.Errorf("Quality = %d, want 7", job.Quality)
	}
	if job.Padding != [2]int{10, 20} {
		t.Errorf("Padding = %v, want [10 20]", job.Padding)
	}
	if len(job.Modes) != 1 || job.Modes[0] != "spa" {
		t.Errorf("Modes = %v, want [spa]", job.Modes)
	}
}

func TestJobFromRecordRejectsPartialRecord(t *testing.T) {
	_, err := JobFromRecord(params.Record{"icon": "/tmp/icon.png"})
	if err == nil {
		t.Fatal("JobFromRecord() on partial record succeeded, want error")
	}
}

func TestRegistryNames(t *testing.T) {
	names := Names()
	want := map[string]bool{"png": true, "ico": true, "icns": true, "splashscreen": true, "svg": true}

	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %d generators", names, len(want))
	}
	for _, n := range names {
		if !want[n] {
			t.Errorf("unexpected generator %q", n)
		}
		if Get(n) == nil {
			t.Errorf("Get(%q) = nil", n)
		}
	}
}
