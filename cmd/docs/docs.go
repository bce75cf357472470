// Package docs holds the swagger specification served at /swagger.
// Regenerate with: swag init -g cmd/receivables_backend/main.go -o cmd/docs
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
        "/auth/login": {
            "post": {
                "description": "Authenticates a user and returns a JWT token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login Credentials", "name": "login", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrentUserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/invoices": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List active invoices",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.InvoiceResponse"}}}
                }
            }
        },
        "/invoices/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Upload a collections spreadsheet",
                "parameters": [
                    {"type": "file", "description": "Spreadsheet", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UploadInvoicesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/invoices/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Update an invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateInvoiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.InvoiceResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Delete an invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/invoices/download": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["invoices"],
                "summary": "Download active invoices as xlsx",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/invoices/download/pdf": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "tags": ["invoices"],
                "summary": "Download active invoices as pdf",
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expiresAt": {"type": "string"}, "user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.CurrentUserResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.InvoiceResponse": {
            "type": "object",
            "properties": {
                "invoiceID": {"type": "string"},
                "invoiceNumber": {"type": "string"},
                "clientName": {"type": "string"},
                "invoiceDate": {"type": "string"},
                "dueDate": {"type": "string"},
                "amount": {"type": "integer"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "paymentDate": {"type": "string"},
                "nextFollowUpDate": {"type": "string"},
                "notes": {"type": "string"},
                "createdBy": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.UpdateInvoiceRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["Pending", "Paid", "Overdue"]},
                "priority": {"type": "string", "enum": ["High", "Medium", "Low"]},
                "nextFollowUpDate": {"type": "string"},
                "paymentDate": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "dto.IngestionStatistics": {
            "type": "object",
            "properties": {
                "totalProcessed": {"type": "integer"},
                "created": {"type": "integer"},
                "updated": {"type": "integer"},
                "errors": {"type": "integer"},
                "skipped": {"type": "integer"}
            }
        },
        "dto.UploadInvoicesResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "statistics": {"$ref": "#/definitions/dto.IngestionStatistics"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Receivables Backend API",
	Description:      "Accounts-receivable tracker: spreadsheet ingestion, follow-up scheduling and exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
