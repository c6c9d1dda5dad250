// Package docs holds the OpenAPI document served at /swagger/doc.json.
// Regenerate it from the handler annotations with:
//
//	swag init -g cmd/httpserver/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/movies": {
            "get": {
                "description": "Get all movies with their genre and resource url",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Every field is required",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Create Movie",
                "parameters": [
                    {"description": "Movie Data", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpserver.MovieRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/movies/new": {
            "get": {
                "description": "Get the five most recent releases",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Newest Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/movies/recommended": {
            "get": {
                "description": "Get movies rated 8 or more, best rated first",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Recommended Movies",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/api/movies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movie Detail",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites the sent fields, empty or zero values keep the stored ones",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Update Movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "movie", "in": "body", "required": true, "schema": {"$ref": "#/definitions/httpserver.MovieRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.MovieDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Clears favorite references and deletes the movie. Data is the number of deleted rows.",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Delete Movie",
                "parameters": [
                    {"type": "integer", "description": "Movie ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.DeleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpserver.ErrorResponse"}}
                }
            }
        },
        "/healthcheck": {
            "get": {
                "description": "Check if server is alive",
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpserver.SuccessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "httpserver.Meta": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "total": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "httpserver.SuccessResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/httpserver.Meta"},
                "data": {}
            }
        },
        "httpserver.MovieListResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/httpserver.Meta"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/httpserver.MovieResponse"}}
            }
        },
        "httpserver.MovieDetailResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/httpserver.Meta"},
                "data": {"$ref": "#/definitions/httpserver.MovieResponse"}
            }
        },
        "httpserver.DeleteResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "meta": {"$ref": "#/definitions/httpserver.Meta"},
                "data": {"type": "integer"}
            }
        },
        "httpserver.ErrorResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"},
                "msg": {"type": "string"}
            }
        },
        "httpserver.GenreResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "ranking": {"type": "integer"}
            }
        },
        "httpserver.MovieResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "rating": {"type": "number"},
                "awards": {"type": "string"},
                "release_date": {"type": "string", "example": "2021-10-22"},
                "length": {"type": "integer"},
                "favorite_movie_id": {"type": "integer"},
                "genre": {"$ref": "#/definitions/httpserver.GenreResponse"},
                "url": {"type": "string"}
            }
        },
        "httpserver.MovieRequest": {
            "type": "object",
            "required": ["title", "rating", "awards", "release_date", "length", "genre_id"],
            "properties": {
                "title": {"type": "string"},
                "rating": {"type": "number", "maximum": 99.9, "minimum": 0},
                "awards": {"type": "string"},
                "release_date": {"type": "string", "example": "2021-10-22"},
                "length": {"type": "integer", "maximum": 2147483647, "minimum": 0},
                "genre_id": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movies API",
	Description:      "CRUD API over movies and their genres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
