// Package docs registers the OpenAPI document served under /swagger/.
// It follows the layout swag init emits; keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/deck": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Candidates filtered by distance, discipline, experience and gender",
                "produces": ["application/json"],
                "tags": ["deck"],
                "summary": "Get the deck",
                "parameters": [
                    {"type": "number", "default": 25, "description": "Max distance in km (0 < d <= 100)", "name": "distance", "in": "query"},
                    {"type": "string", "description": "Discipline, case-insensitive", "name": "discipline", "in": "query"},
                    {"type": "string", "description": "beginner | intermediate | advanced | pro", "name": "experience", "in": "query"},
                    {"type": "string", "description": "male | female | non-binary", "name": "gender", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeckResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/deck/{fighterId}/like": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "match is null unless the fighter likes back",
                "produces": ["application/json"],
                "tags": ["deck"],
                "summary": "Like a fighter",
                "parameters": [
                    {"type": "string", "description": "Fighter ID", "name": "fighterId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LikeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/deck/{fighterId}/pass": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["deck"],
                "summary": "Pass on a fighter",
                "parameters": [
                    {"type": "string", "description": "Fighter ID", "name": "fighterId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PassResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StatusResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Basic health check (no store)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Process liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/matches": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "List my matches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MatchesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/me/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the stored profile, or completion flags set to false when none exists",
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get my profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Validates the full profile. Fighters must be 18 or older.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Create or replace my profile",
                "parameters": [
                    {"description": "Profile payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Profile"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["profile"],
                "summary": "Delete my profile",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness (includes store connectivity)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.DeckResponse": {
            "type": "object",
            "properties": {
                "query": {"$ref": "#/definitions/models.DeckQuery"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.Fighter"}}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                },
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "status": {"type": "string"}
            }
        },
        "dto.LikeResponse": {
            "type": "object",
            "properties": {
                "liked": {"type": "boolean"},
                "match": {"$ref": "#/definitions/dto.MatchInfo"}
            }
        },
        "dto.MatchInfo": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "fighterId": {"type": "string", "example": "ftr_001"}
            }
        },
        "dto.MatchItem": {
            "type": "object",
            "properties": {
                "fighterId": {"type": "string", "example": "ftr_003"},
                "lastMessage": {"type": "string"},
                "matchedAt": {"type": "string"}
            }
        },
        "dto.MatchesResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.MatchItem"}}
            }
        },
        "dto.PassResponse": {
            "type": "object",
            "properties": {
                "passed": {"type": "boolean"}
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {
                "region": {"type": "string", "example": "unknown"},
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string"}
            }
        },
        "models.DeckQuery": {
            "type": "object",
            "properties": {
                "discipline": {"type": "string"},
                "distance": {"type": "number"},
                "experience": {"type": "string"},
                "gender": {"type": "string"}
            }
        },
        "models.Fighter": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "avatarUrl": {"type": "string"},
                "disciplines": {"type": "array", "items": {"type": "string"}},
                "distanceKm": {"type": "number"},
                "experience": {"type": "string"},
                "fighterId": {"type": "string"},
                "gender": {"type": "string"},
                "name": {"type": "string"},
                "record": {"$ref": "#/definitions/models.FighterRecord"},
                "weightClass": {"type": "string"}
            }
        },
        "models.FighterRecord": {
            "type": "object",
            "properties": {
                "amateur": {"type": "string"},
                "professional": {"type": "string"}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "amateurDraws": {"type": "integer"},
                "amateurLosses": {"type": "integer"},
                "amateurWins": {"type": "integer"},
                "availability": {"type": "array", "items": {"type": "string"}},
                "bio": {"type": "string"},
                "disciplines": {"type": "array", "items": {"type": "string"}},
                "dob": {"type": "string"},
                "experienceLevel": {"type": "string"},
                "gender": {"type": "string"},
                "gymAffiliation": {"type": "string"},
                "heightCm": {"type": "integer"},
                "kycVerified": {"type": "boolean"},
                "photoUrl": {"type": "string"},
                "proDraws": {"type": "integer"},
                "proLosses": {"type": "integer"},
                "proWins": {"type": "integer"},
                "profileCompleted": {"type": "boolean"},
                "reachCm": {"type": "integer"},
                "stance": {"type": "string"},
                "updatedAt": {"type": "string"},
                "weightClass": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8787",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Rumbler Backend API",
	Description:      "Rumbler API for combat-sports sparring partner matching",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
