package routes

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/MGaul6/SkillExchange/internal/config"
	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.yaml
var openAPISpec []byte

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    body { margin: 0; font-family: Georgia, "Times New Roman", serif; color: #132019; background: #f6f7f4; }
    main { max-width: 1120px; margin: 0 auto; padding: 48px 20px 64px; }
    .panel { background: #ffffff; border: 1px solid #d8ddd6; border-radius: 18px; padding: 24px; margin-bottom: 20px; }
    a { color: #1f6f4a; }
    pre { overflow-x: auto; padding: 16px; border-radius: 12px; background: #0f172a; color: #e2e8f0; font-size: 0.9rem; }
  </style>
</head>
<body>
  <main>
    <section class="panel">
      <h1>{{ .Title }}</h1>
      <p>The OpenAPI spec is served from the same origin at <code>/docs/openapi.yaml</code>. This page is only exposed in development.</p>
      <p><a href="/docs/openapi.yaml">Open raw spec</a> &middot; <a href="/docs/openapi.yaml" download="openapi.yaml">Download YAML</a></p>
      <p>Last loaded {{ .LoadedAt }}</p>
    </section>
    <section class="panel">
      <h2>OpenAPI YAML</h2>
      <pre>{{ .Spec }}</pre>
    </section>
  </main>
</body>
</html>
`

type docsPageData struct {
	Title    string
	LoadedAt string
	Spec     string
}

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	pageData := docsPageData{
		Title:    "SkillExchange API Docs",
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
		Spec:     string(openAPISpec),
	}

	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'")

		var body bytes.Buffer
		if err := indexTemplate.Execute(&body, pageData); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render api docs")
		}
		return c.Status(fiber.StatusOK).Send(body.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, "application/yaml; charset=utf-8")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="openapi.yaml"`)
		return c.Status(fiber.StatusOK).Send(openAPISpec)
	})

	return nil
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
