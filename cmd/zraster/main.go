// zraster - depth rasterizer for triangle meshes.
// Loads an OBJ or glTF/GLB mesh, fits it into the unit cube and writes a
// greyscale depth image: nearer surfaces are brighter, uncovered pixels keep
// the background colour.
//
// With -w or --wireframe only pixels whose barycentric coordinates are all
// within render.WireframeEpsilon of zero are drawn.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/taigrr/zraster/pkg/config"
	"github.com/taigrr/zraster/pkg/models"
	"github.com/taigrr/zraster/pkg/output"
	"github.com/taigrr/zraster/pkg/render"
)

var (
	configPath = flag.String("config", "", "Path to JSON config file")
	bgColor    = flag.String("bg", "", "Background colour for uncovered pixels (R,G,B[,A], default transparent)")
	noFlip     = flag.Bool("noflip", false, "Keep window row 0 as the first image row")
	preview    = flag.Bool("preview", false, "Show the image in the terminal after saving")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "zraster - depth rasterizer for triangle meshes\n\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", usageLine)
		fmt.Fprintf(os.Stderr, "Mesh formats: .obj .gltf .glb\n")
		fmt.Fprintf(os.Stderr, "Image formats: .png .jpg .webp .tga .bmp .tiff\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	a, err := parseArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath, config.Flags{
		Background: *bgColor,
		NoFlip:     *noFlip,
		Verbose:    *verbose,
		Preview:    *preview,
		Wireframe:  a.wireframe,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(a, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and merges flags into it.
func loadConfig(path string, flags config.Flags) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(a args, cfg config.Config) error {
	logger := newLogger(cfg)
	render.SetLogger(logger)
	defer render.SetLogger(nil)

	// Fail on a bad output extension before doing any work
	if _, err := output.FormatFromPath(a.imageFile); err != nil {
		return err
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return err
	}

	scene, err := models.Load(a.meshFile)
	if err != nil {
		return err
	}
	logImport(logger, filepath.Base(a.meshFile), scene)

	if !scene.Normalize() {
		logger.Warn("mesh has no extent, rendering without normalization", "file", a.meshFile)
	}

	db, stats, err := render.Render(scene, a.width, a.height, cfg.Mode)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	img := db.Image(render.ImageOptions{Background: bg, FlipY: cfg.Flip()})
	if err := output.Save(a.imageFile, img); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	logger.Info("wrote image",
		"path", a.imageFile,
		"size", fmt.Sprintf("%dx%d", a.width, a.height),
		"covered", db.CoveredCount(),
		"degenerate", stats.Degenerate)

	if cfg.Preview {
		return showPreview(a.imageFile)
	}
	return nil
}

// logImport reports what the importer found: one line for the scene, one
// debug line per submodel.
func logImport(logger *slog.Logger, file string, scene *models.Scene) {
	logger.Info("loaded mesh",
		"file", file,
		"submodels", len(scene.Submodels),
		"vertices", scene.VertexCount(),
		"triangles", scene.TriangleCount())
	for i, sm := range scene.Submodels {
		logger.Debug("submodel",
			"index", i,
			"name", sm.Name,
			"vertices", sm.VertexCount(),
			"triangles", sm.TriangleCount())
	}
}
