// Package docs especificación OpenAPI de la API. Se regenera con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
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
        "/api/costs": {
            "post": {
                "summary": "Registrar costo",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.CostResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del costo",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar costos",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CostListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Categoría",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/costs/summary": {
            "get": {
                "summary": "Resumen mensual de costos por categoría",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CostSummaryResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "required": true,
                        "description": "Año",
                        "type": "integer"
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "required": true,
                        "description": "Mes (1-12)",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/costs/{id}": {
            "get": {
                "summary": "Obtener costo por ID",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CostResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del costo",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar costo",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CostResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del costo",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del costo",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar costo",
                "tags": [
                    "costs"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del costo",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/flows": {
            "post": {
                "summary": "Crear flujo de recogida",
                "tags": [
                    "flows"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.FlowResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Flujo y límites de conformidad",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar flujos",
                "tags": [
                    "flows"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FlowResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "active",
                        "in": "query",
                        "required": false,
                        "description": "Solo activos",
                        "type": "boolean"
                    }
                ]
            }
        },
        "/api/flows/{id}": {
            "get": {
                "summary": "Obtener flujo por ID",
                "tags": [
                    "flows"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FlowResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del flujo",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar flujo",
                "tags": [
                    "flows"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.FlowResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del flujo",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Flujo y límites de conformidad",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar flujo sin referencias",
                "tags": [
                    "flows"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del flujo",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/intakes": {
            "post": {
                "summary": "Registrar ingreso",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.IntakeResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del ingreso",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar ingresos",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.IntakeListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "municipality_id",
                        "in": "query",
                        "required": false,
                        "description": "Municipio",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material",
                        "type": "string"
                    },
                    {
                        "name": "flow_id",
                        "in": "query",
                        "required": false,
                        "description": "Flujo",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/intakes/summary": {
            "get": {
                "summary": "Total conferito por material",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.IntakeSummaryResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/intakes/{id}": {
            "get": {
                "summary": "Obtener ingreso por ID",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.IntakeResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del ingreso",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar ingreso",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.IntakeResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del ingreso",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del ingreso",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar ingreso",
                "tags": [
                    "intakes"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del ingreso",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/invoices": {
            "get": {
                "summary": "Listar facturas",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.InvoiceListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "consortium",
                        "in": "query",
                        "required": false,
                        "description": "Consorcio",
                        "type": "string"
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "required": false,
                        "description": "Año",
                        "type": "integer"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "draft | sent | paid",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/invoices/generate": {
            "post": {
                "summary": "Generar factura mensual de un consorcio",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.InvoiceResponse"
                    },
                    "400": {
                        "description": "dto.ErrorResponse"
                    },
                    "409": {
                        "description": "ya existe para el período"
                    }
                },
                "description": "Cantidades por flujo del mes × tarifa por tonelada del flujo. Una por consorcio y mes.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Consorcio y período",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/invoices/{id}": {
            "get": {
                "summary": "Obtener factura por ID",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.InvoiceResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la factura",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/invoices/{id}/pdf": {
            "get": {
                "summary": "Descargar factura en PDF",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la factura",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/invoices/{id}/status": {
            "patch": {
                "summary": "Cambiar estado de la factura",
                "tags": [
                    "invoices"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.InvoiceResponse"
                    },
                    "409": {
                        "description": "transición no permitida"
                    }
                },
                "description": "draft → sent → paid.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la factura",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Nuevo estado",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/materials": {
            "post": {
                "summary": "Crear tipología de material",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.MaterialResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del material",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar materiales",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MaterialResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "active",
                        "in": "query",
                        "required": false,
                        "description": "Solo activos",
                        "type": "boolean"
                    }
                ]
            }
        },
        "/api/materials/{id}": {
            "get": {
                "summary": "Obtener material por ID",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MaterialResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del material",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar material",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MaterialResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "description": "Con movimientos registrados solo se aceptan cambios de precio medio y estado.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del material",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del material",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar material sin movimientos",
                "tags": [
                    "materials"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del material",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/municipalities": {
            "post": {
                "summary": "Crear municipio",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.MunicipalityResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del municipio",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar municipios",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MunicipalityListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Búsqueda por nombre",
                        "type": "string"
                    },
                    {
                        "name": "delegation_active",
                        "in": "query",
                        "required": false,
                        "description": "Solo con delega activa",
                        "type": "boolean"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/municipalities/istat/{code}": {
            "get": {
                "summary": "Buscar municipio por código ISTAT",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MunicipalityResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "code",
                        "in": "path",
                        "required": true,
                        "description": "Código ISTAT",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/municipalities/{id}": {
            "get": {
                "summary": "Obtener municipio por ID",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MunicipalityResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del municipio",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar municipio",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MunicipalityResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del municipio",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del municipio",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar municipio",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "409": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del municipio",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/municipalities/{id}/toggle-delegation": {
            "post": {
                "summary": "Activar/desactivar la delega ANCI-COREPLA",
                "tags": [
                    "municipalities"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MunicipalityResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del municipio",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/notifications": {
            "get": {
                "summary": "Notificaciones vigentes",
                "tags": [
                    "notifications"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.NotificationListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ]
            },
            "post": {
                "summary": "Publicar notificación",
                "tags": [
                    "notifications"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.NotificationResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Notificación",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/notifications/read-all": {
            "post": {
                "summary": "Marcar todas como leídas",
                "tags": [
                    "notifications"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/notifications/{id}": {
            "delete": {
                "summary": "Descartar notificación",
                "tags": [
                    "notifications"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la notificación",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/notifications/{id}/read": {
            "post": {
                "summary": "Marcar como leída",
                "tags": [
                    "notifications"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la notificación",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/outbounds": {
            "post": {
                "summary": "Registrar salida",
                "tags": [
                    "outbounds"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.OutboundResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "422": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "description": "Sin total_value se deriva de quantity_kg × unit_price; uno distinto se rechaza con 422.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos de la salida",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar salidas",
                "tags": [
                    "outbounds"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OutboundListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material",
                        "type": "string"
                    },
                    {
                        "name": "recipient",
                        "in": "query",
                        "required": false,
                        "description": "Destinatario (contiene)",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/outbounds/{id}": {
            "get": {
                "summary": "Obtener salida por ID",
                "tags": [
                    "outbounds"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OutboundResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la salida",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar salida",
                "tags": [
                    "outbounds"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.OutboundResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "422": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la salida",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos de la salida",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar salida",
                "tags": [
                    "outbounds"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID de la salida",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/processing": {
            "post": {
                "summary": "Registrar procesamiento",
                "tags": [
                    "processing"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.ProcessingResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del procesamiento",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar procesamientos",
                "tags": [
                    "processing"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessingListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material",
                        "type": "string"
                    },
                    {
                        "name": "operation",
                        "in": "query",
                        "required": false,
                        "description": "sorting | baling | storage",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/processing/{id}": {
            "get": {
                "summary": "Obtener procesamiento por ID",
                "tags": [
                    "processing"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessingResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del procesamiento",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar procesamiento",
                "tags": [
                    "processing"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ProcessingResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del procesamiento",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del procesamiento",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar procesamiento",
                "tags": [
                    "processing"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del procesamiento",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/reports/collection-trend": {
            "get": {
                "summary": "Tendencia de recogida mensual",
                "tags": [
                    "reports"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CollectionTrendResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from_year",
                        "in": "query",
                        "required": true,
                        "description": "Año inicial",
                        "type": "integer"
                    },
                    {
                        "name": "to_year",
                        "in": "query",
                        "required": true,
                        "description": "Año final",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/reports/monthly": {
            "get": {
                "summary": "Informe mensual",
                "tags": [
                    "reports"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MonthlyReportResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "description": "Totales de ingresos, salidas y procesamientos del mes, balance y totales por municipio.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "required": true,
                        "description": "Año",
                        "type": "integer"
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "required": true,
                        "description": "Mes (1-12)",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/samples": {
            "post": {
                "summary": "Registrar análisis (borrador)",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.SampleResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "description": "Fracciones fuera de [0,100] se rechazan; una suma > 100 solo marca sum_warning.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del análisis",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "get": {
                "summary": "Listar análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SampleListResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "municipality_id",
                        "in": "query",
                        "required": false,
                        "description": "Municipio",
                        "type": "string"
                    },
                    {
                        "name": "flow_id",
                        "in": "query",
                        "required": false,
                        "description": "Flujo",
                        "type": "string"
                    },
                    {
                        "name": "validated",
                        "in": "query",
                        "required": false,
                        "description": "Estado de validación",
                        "type": "boolean"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/samples/export/csv": {
            "get": {
                "summary": "Exportar análisis a CSV",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "text/csv"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/export/xlsx": {
            "get": {
                "summary": "Exportar análisis a Excel",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "municipality_id",
                        "in": "query",
                        "required": false,
                        "description": "Municipio",
                        "type": "string"
                    },
                    {
                        "name": "flow_id",
                        "in": "query",
                        "required": false,
                        "description": "Flujo",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/moving-average": {
            "get": {
                "summary": "Media móvil cuatrimestral",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.MovingAverageResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "municipality_id",
                        "in": "query",
                        "required": true,
                        "description": "Municipio",
                        "type": "string"
                    },
                    {
                        "name": "flow_id",
                        "in": "query",
                        "required": true,
                        "description": "Flujo",
                        "type": "string"
                    },
                    {
                        "name": "date",
                        "in": "query",
                        "required": false,
                        "description": "Fecha de referencia (YYYY-MM-DD)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/statistics": {
            "get": {
                "summary": "Estadísticas de calidad",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.StatisticsResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "municipality_id",
                        "in": "query",
                        "required": false,
                        "description": "Municipio",
                        "type": "string"
                    },
                    {
                        "name": "flow_id",
                        "in": "query",
                        "required": false,
                        "description": "Flujo",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/validate-multiple": {
            "post": {
                "summary": "Validar varios análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.BulkValidateResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "description": "Cada id se procesa por separado; el resultado indica éxito o error por elemento.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "IDs a validar",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/samples/{id}": {
            "get": {
                "summary": "Obtener análisis por ID",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SampleResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            },
            "put": {
                "summary": "Modificar análisis en borrador",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SampleResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    },
                    "409": {
                        "description": "análisis ya validado"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "description": "Datos del análisis",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            },
            "delete": {
                "summary": "Eliminar análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/{id}/calculations": {
            "get": {
                "summary": "Cálculos de consorcio del análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.CalculationsResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "422": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "description": "Cuotas de competencia sobre la media móvil cuatrimestral, conformidad y contraprestación neta del mes.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/{id}/conformity": {
            "get": {
                "summary": "Conformidad del análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ConformityResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "422": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "description": "Evalúa las fracciones contra los límites vigentes del flujo. No modifica el análisis.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/{id}/duplicate": {
            "post": {
                "summary": "Duplicar análisis como borrador",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "201": {
                        "description": "dto.SampleResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "description": "Fecha del duplicado",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "description": "El cuerpo es opcional; sin sample_date el nuevo borrador lleva la fecha de hoy.",
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/api/samples/{id}/unvalidate": {
            "post": {
                "summary": "Anular validación",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SampleResponse"
                    },
                    "409": {
                        "description": "no validado"
                    }
                },
                "description": "Devuelve el análisis a borrador y descarta el veredicto guardado.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/samples/{id}/validate": {
            "post": {
                "summary": "Validar análisis",
                "tags": [
                    "samples"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.ValidateResponse"
                    },
                    "404": {
                        "description": "dto.ErrorResponse"
                    },
                    "409": {
                        "description": "ya validado"
                    },
                    "422": {
                        "description": "sin flujo"
                    }
                },
                "description": "Pasa el análisis a validado, lo evalúa contra los límites de su flujo y guarda el veredicto.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "ID del análisis",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/stock": {
            "get": {
                "summary": "Existencias por material",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.BalancesResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "description": "Conferito − salido − lavorado con movimientos hasta la fecha (incluida).",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "required": false,
                        "description": "Fecha de referencia (YYYY-MM-DD, por defecto hoy)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/stock/export/xlsx": {
            "get": {
                "summary": "Exportar existencias a Excel",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "required": false,
                        "description": "Fecha de referencia (YYYY-MM-DD)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/stock/history": {
            "get": {
                "summary": "Serie histórica de existencias",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.HistoryResponse"
                    },
                    "400": {
                        "description": "dto.ValidationErrorResponse"
                    }
                },
                "description": "Un punto por fin de mes entre from y to.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": true,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": true,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material (vacío = todos)",
                        "type": "string"
                    }
                ]
            }
        },
        "/api/stock/movements": {
            "get": {
                "summary": "Libro de almacén",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.WarehouseMovementsResponse"
                    }
                },
                "description": "Unión firmada de ingresos (+), salidas (−) y procesamientos (−).",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "required": false,
                        "description": "Desde (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "required": false,
                        "description": "Hasta (YYYY-MM-DD)",
                        "type": "string"
                    },
                    {
                        "name": "material_id",
                        "in": "query",
                        "required": false,
                        "description": "Material",
                        "type": "string"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Límite",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "description": "Offset",
                        "type": "integer"
                    }
                ]
            }
        },
        "/api/stock/refresh": {
            "post": {
                "summary": "Recalcular existencias",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.RefreshResponse"
                    }
                },
                "description": "Recalcula, guarda las fotos de la fecha y avisa de materiales bajo umbral.",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": false,
                        "description": "Fecha de referencia",
                        "schema": {
                            "type": "object"
                        }
                    }
                ]
            }
        },
        "/api/stock/snapshots": {
            "get": {
                "summary": "Fotos de existencias guardadas",
                "tags": [
                    "stock"
                ],
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "dto.SnapshotsResponse"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "required": false,
                        "description": "Fecha (YYYY-MM-DD, por defecto hoy)",
                        "type": "string"
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Token JWT emitido por el proveedor de identidad: \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Reciclaje API",
	Description:      "API de la planta de selección: ingresos, procesamientos, salidas, análisis merceológicos con evaluación de conformidad, existencias, facturación a consorcios, costos e informes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
