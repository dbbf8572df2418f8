// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/": {
            "get": {
                "description": "Lists records newest first. Filters combine with AND. With download=pdf or download=csv the same result set is returned as an attachment.",
                "produces": ["application/json", "application/pdf", "text/csv"],
                "tags": ["records"],
                "summary": "List records",
                "parameters": [
                    {"type": "string", "description": "Exact hostel", "name": "hostel_type", "in": "query"},
                    {"type": "string", "description": "Case-insensitive roll number substring", "name": "roll_number", "in": "query"},
                    {"type": "string", "description": "Exact year", "name": "year", "in": "query"},
                    {"enum": ["pdf", "csv"], "type": "string", "description": "Export format", "name": "download", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching records", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Student"}}},
                    "400": {"description": "Unsupported download format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Update record",
                "description": "Updating an id that does not exist changes nothing and echoes the submitted record.",
                "parameters": [
                    {"description": "Record fields and id", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated record", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Missing field or invalid id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Create record",
                "parameters": [
                    {"description": "Record fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Stored record", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Missing required field", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deleting an id that does not exist still succeeds.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Delete record",
                "parameters": [
                    {"description": "Record id", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DeleteStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Verifies the credentials and sets the HttpOnly session cookie. On an empty users table the configured bootstrap pair creates the first superuser.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Login credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Login successful, session cookie set", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}},
                    "400": {"description": "Missing username or password", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Expires the session cookie. Tokens are stateless, so nothing is revoked server side.",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/dto.SuccessResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "Signed-in account", "schema": {"$ref": "#/definitions/dto.SessionResponse"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Record statistics",
                "parameters": [
                    {"type": "string", "description": "Exact hostel", "name": "hostel_type", "in": "query"},
                    {"type": "string", "description": "Case-insensitive roll number substring", "name": "roll_number", "in": "query"},
                    {"type": "string", "description": "Exact year", "name": "year", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Counters over the matching records", "schema": {"$ref": "#/definitions/models.StudentStats"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List admin accounts",
                "responses": {
                    "200": {"description": "Accounts, newest first", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}},
                    "403": {"description": "Superuser session required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create admin account",
                "parameters": [
                    {"description": "Account fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created account", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Missing or invalid field", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Superuser session required", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Username or phone number already exists", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateStudentRequest": {
            "type": "object",
            "required": ["college_type", "name", "roll_number", "state"],
            "properties": {
                "college_type": {"type": "string", "example": "Arts & Science"},
                "hostel": {"type": "string", "example": "Boys Hostel"},
                "name": {"type": "string", "example": "Muhammed Ali"},
                "roll_number": {"type": "string", "example": "21CS045"},
                "state": {"type": "string", "example": "Kerala"},
                "year": {"type": "string", "example": "2nd"}
            }
        },
        "dto.UpdateStudentRequest": {
            "type": "object",
            "required": ["college_type", "id", "name", "roll_number", "state"],
            "properties": {
                "id": {"type": "integer", "minimum": 1, "example": 1},
                "college_type": {"type": "string", "example": "Arts & Science"},
                "hostel": {"type": "string", "example": "Boys Hostel"},
                "name": {"type": "string", "example": "Muhammed Ali"},
                "roll_number": {"type": "string", "example": "21CS045"},
                "state": {"type": "string", "example": "Kerala"},
                "year": {"type": "string", "example": "2nd"}
            }
        },
        "dto.DeleteStudentRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer", "minimum": 1, "example": 1}
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["name", "password", "phone_number", "username"],
            "properties": {
                "name": {"type": "string", "example": "Sara"},
                "password": {"type": "string", "example": "secret1"},
                "phone_number": {"type": "string", "example": "9876543210"},
                "role": {"type": "string", "enum": ["admin", "superuser"], "example": "admin"},
                "username": {"type": "string", "example": "sara"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "AUTH_001"},
                "debugInfo": {"type": "string"},
                "details": {},
                "error": {"type": "string", "example": "Invalid credentials"},
                "field": {"type": "string", "example": "name"},
                "success": {"type": "boolean", "example": false},
                "timestamp": {"type": "string", "example": "2026-03-01T10:00:00Z"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string", "example": "secret"},
                "username": {"type": "string", "example": "dpt"}
            }
        },
        "dto.SessionResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Muhsin"},
                "role": {"type": "string", "example": "superuser"}
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true}
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 2},
                "name": {"type": "string", "example": "Sara"},
                "role": {"type": "string", "example": "admin"},
                "username": {"type": "string", "example": "sara"}
            }
        },
        "models.Student": {
            "type": "object",
            "properties": {
                "college_type": {"type": "string", "example": "Arts & Science"},
                "created_at": {"type": "string", "example": "2026-03-01T10:00:00Z"},
                "created_by": {"type": "integer", "example": 1},
                "hostel": {"type": "string", "example": "Boys Hostel"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Muhammed Ali"},
                "roll_number": {"type": "string", "example": "21CS045"},
                "state": {"type": "string", "example": "Kerala"},
                "year": {"type": "string", "example": "2nd"}
            }
        },
        "models.StudentStats": {
            "type": "object",
            "properties": {
                "active_states": {"type": "integer", "example": 5},
                "colleges": {"type": "integer", "example": 3},
                "total_records": {"type": "integer", "example": 120}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string", "example": "2026-03-01T10:00:00Z"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Muhsin"},
                "phone_number": {"type": "string", "example": "9876543210"},
                "role": {"type": "string", "example": "admin"},
                "username": {"type": "string", "example": "dpt"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Ramadan Data Collection API",
	Description:      "Admin API for collecting and exporting Ramadan student records. Authentication uses the HttpOnly session cookie set by /auth/login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
