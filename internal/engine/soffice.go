// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pdiddy/officepdf/pkg/types"
)

// LibreOffice drives soffice in headless mode.
type LibreOffice struct {
	bin  string
	exec executor
}

// NewLibreOffice returns an engine backed by the soffice binary named in
// cfg. An empty path triggers discovery: bundled tools/ locations next to
// the executable, platform install locations, then PATH.
func NewLibreOffice(cfg types.EngineConfig) (*LibreOffice, error) {
	return newLibreOffice(cfg, defaultExec)
}

func newLibreOffice(cfg types.EngineConfig, exec executor) (*LibreOffice, error) {
	bin := cfg.Path
	if bin == "" {
		found, err := findSoffice(exec)
		if err != nil {
			return nil, err
		}
		bin = found
	} else if !exec.FileExists(bin) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrEngineNotFound, bin)
	}
	return &LibreOffice{bin: bin, exec: exec}, nil
}

// Name returns the engine name.
func (lo *LibreOffice) Name() string { return "libreoffice" }

// Path returns the soffice binary the engine will invoke.
func (lo *LibreOffice) Path() string { return lo.bin }

// Available reports whether the soffice binary responds to --version.
func (lo *LibreOffice) Available() bool {
	_, err := lo.exec.RunCombined(context.Background(), lo.bin, "--version")
	return err == nil
}

// Convert runs soffice --headless on srcPath, writing the PDF into outDir.
// Each invocation gets its own scratch user profile so parallel instances
// do not contend on the profile lock.
func (lo *LibreOffice) Convert(ctx context.Context, srcPath, outDir string) (string, error) {
	args := []string{"--headless", "--norestore", "--convert-to", "pdf", "--outdir", outDir, srcPath}

	profile, err := os.MkdirTemp("", "officepdf-profile-")
	if err == nil {
		defer os.RemoveAll(profile)
		args = append([]string{"-env:UserInstallation=file://" + filepath.ToSlash(profile)}, args...)
	}

	out, err := lo.exec.RunCombined(ctx, lo.bin, args...)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", &RunError{
			Engine: lo.Name(),
			Src:    srcPath,
			Output: strings.TrimSpace(string(out)),
			Err:    err,
		}
	}

	pdf := filepath.Join(outDir, PDFName(srcPath))
	if !lo.exec.FileExists(pdf) {
		return "", fmt.Errorf("%w: expected %s", ErrOutputMissing, pdf)
	}
	return pdf, nil
}

// PDFName returns the output filename soffice derives from a source path:
// the base name with the extension replaced by .pdf.
func PDFName(srcPath string) string {
	base := filepath.Base(srcPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
}

// sofficeBin is the binary name soffice ships under on this platform.
func sofficeBin() string {
	if runtime.GOOS == "windows" {
		return "soffice.exe"
	}
	return "soffice"
}

// bundledCandidates lists locations a portable LibreOffice may be bundled
// at, relative to a base directory.
func bundledCandidates() []string {
	bin := sofficeBin()
	candidates := []string{
		filepath.Join("tools", "LibreOfficePortable", "App", "libreoffice", "program", bin),
		filepath.Join("tools", "libreoffice", "App", "libreoffice", "program", bin),
		filepath.Join("tools", "libreoffice", "program", bin),
		filepath.Join("tools", "LibreOffice", "program", bin),
	}
	if runtime.GOOS == "darwin" {
		candidates = append(candidates,
			filepath.Join("tools", "LibreOffice.app", "Contents", "MacOS", "soffice"))
	}
	return candidates
}

// installCandidates lists absolute paths of well-known system installs
// checked before falling back to PATH.
func installCandidates() []string {
	if runtime.GOOS == "darwin" {
		return []string{"/Applications/LibreOffice.app/Contents/MacOS/soffice"}
	}
	return nil
}

// findSoffice locates the soffice binary: bundled copies next to the
// executable first, then well-known install locations, then PATH.
func findSoffice(exec executor) (string, error) {
	var bases []string
	if self, err := os.Executable(); err == nil {
		bases = append(bases, filepath.Dir(self))
	}
	if wd, err := os.Getwd(); err == nil {
		bases = append(bases, wd)
	}

	for _, base := range bases {
		for _, rel := range bundledCandidates() {
			p := filepath.Join(base, rel)
			if exec.FileExists(p) {
				return p, nil
			}
		}
	}

	for _, p := range installCandidates() {
		if exec.FileExists(p) {
			return p, nil
		}
	}

	for _, name := range []string{"soffice", "libreoffice"} {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: install LibreOffice or bundle it under tools/", ErrEngineNotFound)
}
