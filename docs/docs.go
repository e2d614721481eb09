// Package docs holds the OpenAPI document served by gin-swagger.
// Keep it in sync with the swag annotations on the controllers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Mergington High School IT",
            "email": "it@mergington.edu"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/activities": {
            "get": {
                "description": "Returns all activities keyed by name, with their participants and remaining capacity",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activities"
                ],
                "summary": "List activities",
                "responses": {
                    "200": {
                        "description": "Activities retrieved successfully",
                        "schema": {
                            "$ref": "#/definitions/dto.ActivityListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/activities/{activityName}/signup": {
            "post": {
                "description": "Adds the student email to the activity's participants",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activities"
                ],
                "summary": "Sign up for an activity",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Activity name",
                        "name": "activityName",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Student email",
                        "name": "email",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Student signed up",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Student already signed up or activity is full",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Activity not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Missing or malformed email",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/activities/{activityName}/unregister": {
            "delete": {
                "description": "Removes the student email from the activity's participants",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activities"
                ],
                "summary": "Unregister from an activity",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Activity name",
                        "name": "activityName",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Student email",
                        "name": "email",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Student unregistered",
                        "schema": {
                            "$ref": "#/definitions/dto.SuccessResponse"
                        }
                    },
                    "400": {
                        "description": "Student is not registered for this activity",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Activity not found",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Missing or malformed email",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ActivityListResponse": {
            "type": "object",
            "additionalProperties": {
                "$ref": "#/definitions/dto.ActivityResponse"
            }
        },
        "dto.ActivityResponse": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "example": "Learn strategies and compete in chess tournaments"
                },
                "max_participants": {
                    "type": "integer",
                    "example": 12
                },
                "participant_count": {
                    "type": "integer",
                    "example": 2
                },
                "participants": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "schedule": {
                    "type": "string",
                    "example": "Fridays, 3:30 PM - 5:00 PM"
                },
                "spots_left": {
                    "type": "integer",
                    "example": 10
                }
            }
        },
        "dto.ErrorCode": {
            "type": "string",
            "enum": [
                "ACT_001",
                "ACT_002",
                "ACT_003",
                "ACT_004",
                "VAL_001",
                "REQ_001",
                "REQ_002",
                "SRV_001"
            ]
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/dto.ErrorCode"
                        }
                    ],
                    "example": "ACT_001"
                },
                "detail": {
                    "type": "string",
                    "example": "Activity not found"
                },
                "field": {
                    "type": "string",
                    "example": "email"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-04-23T12:01:05.123Z"
                }
            }
        },
        "dto.SuccessResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Signed up newstudent@mergington.edu for Chess Club"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Mergington Activities API",
	Description:      "API for signing up to Mergington High School extracurricular activities",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
