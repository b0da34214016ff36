package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/zraster/pkg/output"
	"github.com/taigrr/zraster/pkg/render"
)

// loadPreview reads the saved image back so the preview shows what the
// encoder actually wrote.
func loadPreview(path string) (image.Image, error) {
	img, err := output.Load(path)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	return img, nil
}

// showPreview draws the image file at path in the alternate screen until a
// key is pressed.
func showPreview(path string) error {
	img, err := loadPreview(path)
	if err != nil {
		return err
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	p := render.NewPreview(img, width, height)
	if err := drawPreview(term, p); err != nil {
		return err
	}

	events := term.Events()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				p = render.NewPreview(img, width, height)
				if err := drawPreview(term, p); err != nil {
					return err
				}
			case uv.KeyPressEvent:
				return nil
			}
		}
	}
}

func drawPreview(term *uv.Terminal, p *render.Preview) error {
	term.Erase()
	p.Draw(term, term.Bounds())
	if err := term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
