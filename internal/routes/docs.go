package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vlad-d/RiseOnBack/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>RiseOn Onboarding API</title>
</head>
<body>
  <h1>RiseOn Onboarding API</h1>
  <p>Development-only endpoint index.</p>
  <h2>App flow</h2>
  <ul>
    <li><code>GET  /api/v1/flow/state</code> — resolved flow state and flags</li>
    <li><code>POST /api/v1/flow/launch</code> — mark first launch seen</li>
    <li><code>POST /api/v1/flow/login</code> / <code>POST /api/v1/flow/logout</code></li>
    <li><code>POST /api/v1/flow/reset</code> — full reset (flags + profile)</li>
  </ul>
  <h2>Survey wizard</h2>
  <ul>
    <li><code>POST /api/v1/survey/start</code></li>
    <li><code>GET  /api/v1/survey/:id</code></li>
    <li><code>PUT  /api/v1/survey/:id/answers</code></li>
    <li><code>POST /api/v1/survey/:id/advance</code> / <code>.../retreat</code></li>
    <li><code>DELETE /api/v1/survey/:id</code> — discard the draft</li>
  </ul>
  <h2>Profile</h2>
  <ul>
    <li><code>GET /api/v1/profile</code></li>
    <li><code>GET /api/v1/profile/progress</code></li>
    <li><code>GET /api/v1/profile/export</code> — backup document</li>
    <li><code>GET /api/v1/features</code> — feature vector for the recommender</li>
    <li><code>GET /api/v1/ws</code> — profile event stream (websocket)</li>
  </ul>
</body>
</html>`

// registerDocs serves the endpoint index in development builds only.
func registerDocs(app *fiber.App, cfg *config.Config) {
	if !cfg.DocsEnabled() {
		return
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
		c.Set("X-Robots-Tag", "noindex, nofollow")
		return c.SendString(docsIndexHTML)
	})
}
