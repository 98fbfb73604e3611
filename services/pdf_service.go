package services

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// PDFConverter renders an HTML document to PDF bytes. The report pipeline
// only depends on this interface; tests substitute a stub so no browser is
// needed.
type PDFConverter interface {
	Convert(html string) ([]byte, error)
	Close() error
}

// RodConverter drives a headless Chromium via CDP. The browser is launched
// lazily on first Convert and reused until Close.
type RodConverter struct {
	browser *rod.Browser
}

func NewRodConverter() *RodConverter { return &RodConverter{} }

func (c *RodConverter) connect() error {
	if c.browser != nil {
		return nil
	}
	url, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect browser: %w", err)
	}
	c.browser = browser
	return nil
}

func (c *RodConverter) Convert(html string) ([]byte, error) {
	if err := c.connect(); err != nil {
		return nil, err
	}

	// A data URL avoids temp files and keeps relative-resource resolution
	// out of the picture; report HTML is self-contained.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))
	page, err := c.browser.Page(proto.TargetCreateTarget{URL: dataURL})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{PrintBackground: true})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	return pdf, nil
}

func (c *RodConverter) Close() error {
	if c.browser == nil {
		return nil
	}
	err := c.browser.Close()
	c.browser = nil
	return err
}
