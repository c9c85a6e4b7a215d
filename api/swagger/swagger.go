package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "BIMCAT Catalog API",
        "description": "Course catalog, carousel, contact inbox and admin dashboard backend",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin session management"},
        {"name": "Cursos", "description": "Course catalog"},
        {"name": "Carousel", "description": "Home-page carousel"},
        {"name": "Mensajes", "description": "Contact form and inbox"},
        {"name": "Media", "description": "Image uploads"},
        {"name": "Exports", "description": "CSV/PDF downloads"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Wrong password"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current admin session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Not authenticated"}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Cursos"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Cursos"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Curso"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/cursos/watch": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Stream catalog changes (SSE)",
                "produces": ["text/event-stream"],
                "responses": {
                    "200": {"description": "Event stream of catalog snapshots"}
                }
            }
        },
        "/cursos/slug/{slug}": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Get course by slug",
                "parameters": [
                    {"name": "slug", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/cursos/{id}": {
            "get": {
                "tags": ["Cursos"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Cursos"],
                "summary": "Partially update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Cursos"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/cursos/{id}/visibility": {
            "patch": {
                "tags": ["Cursos"],
                "summary": "Toggle course visibility",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/carousel": {
            "get": {
                "tags": ["Carousel"],
                "summary": "List carousel images in display order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Carousel"],
                "summary": "Upload carousel image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "required": true, "type": "file"},
                    {"name": "title", "in": "formData", "required": true, "type": "string"},
                    {"name": "description", "in": "formData", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Carousel"],
                "summary": "Reorder carousel images",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "array", "items": {"$ref": "#/definitions/CarouselOrderEntry"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Carousel"],
                "summary": "Rename carousel image",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CarouselRenameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Carousel"],
                "summary": "Delete carousel image",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/mensajes": {
            "get": {
                "tags": ["Mensajes"],
                "summary": "List contact messages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Mensajes"],
                "summary": "Submit contact message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMensajeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/mensajes/read": {
            "patch": {
                "tags": ["Mensajes"],
                "summary": "Mark message as read",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkMensajeReadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid index"}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["Media"],
                "summary": "Upload course image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/delete-image": {
            "post": {
                "tags": ["Media"],
                "summary": "Delete uploaded image by URL",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteImageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/tmp-image/{filename}": {
            "get": {
                "tags": ["Media"],
                "summary": "Serve temporary preview image",
                "parameters": [
                    {"name": "filename", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Image bytes"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/exports/cursos": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export course catalog",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/exports/mensajes": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export contact inbox",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            },
            "required": ["password"]
        },
        "Curso": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "slug": {"type": "string"},
                "img": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"},
                "desc": {"type": "string"},
                "descLong": {"type": "string"},
                "lessons": {"type": "string"},
                "duration": {"type": "string"},
                "level": {"type": "string"},
                "teacher": {"type": "string"},
                "priceProfesional": {"type": "string"},
                "priceEstudiante": {"type": "string"},
                "offerPriceProfesional": {"type": "string"},
                "offerPriceEstudiante": {"type": "string"},
                "offerEndDate": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "temas": {"type": "array", "items": {"$ref": "#/definitions/Tema"}},
                "categoria": {"type": "string"},
                "visible": {"type": "boolean"}
            },
            "required": ["title"]
        },
        "Tema": {
            "type": "object",
            "properties": {
                "titulo": {"type": "string"},
                "contenidos": {"type": "array", "items": {"type": "string"}}
            }
        },
        "CarouselOrderEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            },
            "required": ["id"]
        },
        "CarouselRenameRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"}
            },
            "required": ["id", "title"]
        },
        "CreateMensajeRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "email": {"type": "string"},
                "telefono": {"type": "string"},
                "asunto": {"type": "string"},
                "mensaje": {"type": "string"}
            },
            "required": ["nombre", "email", "asunto", "mensaje"]
        },
        "MarkMensajeReadRequest": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"}
            },
            "required": ["index"]
        },
        "DeleteImageRequest": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"}
            },
            "required": ["imageUrl"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
