package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the content API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Chemical Company API - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Chemical Company API", "version": "1.0.0" },
  "paths": {
    "/": { "get": { "summary": "Service banner", "responses": { "200": { "description": "running" } } } },
    "/test": { "get": { "summary": "Store diagnostics", "responses": { "200": { "description": "diagnostic report" } } } },
    "/api/categories": { "get": { "summary": "List product categories", "responses": { "200": { "description": "categories" }, "503": { "description": "database not available" } } } },
    "/api/products": {
      "get": {
        "summary": "List products",
        "parameters": [
          { "name": "category", "in": "query", "schema": { "type": "string" } },
          { "name": "q", "in": "query", "description": "case-insensitive substring of name, summary, description or keywords", "schema": { "type": "string" } }
        ],
        "responses": { "200": { "description": "products" }, "503": { "description": "database not available" } }
      }
    },
    "/api/products/{slug}": {
      "get": { "summary": "Get a product", "parameters": [{ "name": "slug", "in": "path", "required": true, "schema": { "type": "string" } }], "responses": { "200": { "description": "product" }, "404": { "description": "Product not found" } } }
    },
    "/api/sectors": { "get": { "summary": "List industry sectors", "responses": { "200": { "description": "sectors" } } } },
    "/api/sectors/{slug}": {
      "get": { "summary": "Get a sector", "parameters": [{ "name": "slug", "in": "path", "required": true, "schema": { "type": "string" } }], "responses": { "200": { "description": "sector" }, "404": { "description": "Sector not found" } } }
    },
    "/api/news": { "get": { "summary": "List news", "parameters": [{ "name": "tag", "in": "query", "schema": { "type": "string" } }], "responses": { "200": { "description": "news" } } } },
    "/api/documents": {
      "get": {
        "summary": "List technical documents",
        "parameters": [
          { "name": "product", "in": "query", "schema": { "type": "string" } },
          { "name": "category", "in": "query", "schema": { "type": "string" } },
          { "name": "language", "in": "query", "schema": { "type": "string" } }
        ],
        "responses": { "200": { "description": "documents" } }
      }
    },
    "/api/jobs": { "get": { "summary": "List job openings", "parameters": [{ "name": "department", "in": "query", "schema": { "type": "string" } }], "responses": { "200": { "description": "jobs" } } } },
    "/api/applications": {
      "post": {
        "summary": "Submit a job application",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"job_slug":{"type":"string"},"message":{"type":"string"},"cv_url":{"type":"string"},"linkedin_url":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored" }, "422": { "description": "validation error" }, "429": { "description": "rate limited" } }
      }
    },
    "/api/contact": {
      "post": {
        "summary": "Submit a contact message",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"company":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "200": { "description": "stored" }, "422": { "description": "validation error" }, "429": { "description": "rate limited" } }
      }
    },
    "/api/company": { "get": { "summary": "Company profile", "responses": { "200": { "description": "profile or default name" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
