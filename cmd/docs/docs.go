// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/ledger_backend/main.go -o cmd/docs
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
		"/workplaces": {
			"post": {
				"summary": "Create a new workplace",
				"tags": [
					"workplaces"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates a workplace, its owner partner and makes the caller its admin.",
				"parameters": [
					{
						"description": "Workplace details",
						"name": "workplace",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateWorkplaceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.WorkplaceResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"get": {
				"summary": "List workplaces for the current user",
				"tags": [
					"workplaces"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the workplaces the caller belongs to.",
				"parameters": [
					{
						"description": "Include disabled workplaces",
						"name": "includeDisabled",
						"in": "query",
						"required": false,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListWorkplacesResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}": {
			"get": {
				"summary": "Get a workplace",
				"tags": [
					"workplaces"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.WorkplaceResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/ad-accounts": {
			"post": {
				"summary": "Add an ad account",
				"tags": [
					"ad-accounts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Ad account",
						"name": "account",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AddAdAccountRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Asset"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/ad-accounts/batch": {
			"post": {
				"summary": "Add several ad accounts",
				"tags": [
					"ad-accounts"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "All accounts are stored or none is.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Ad accounts",
						"name": "accounts",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AddAdAccountsRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "array",
								"items": {
									"$ref": "#/definitions/domain.Asset"
								}
							}
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/admin/wipe": {
			"delete": {
				"summary": "Wipe a workplace",
				"tags": [
					"admin"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Deletes every record of the workplace, including closed periods and tax settings.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/partners": {
			"post": {
				"summary": "Create a partner",
				"tags": [
					"partners"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Partner details",
						"name": "partner",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePartnerRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.Partner"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/partners/ledger": {
			"get": {
				"summary": "Get reconciled partner ledgers",
				"tags": [
					"partners"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns every partner ledger with automatic and manual entries, newest first.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PartnerLedgersResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/partners/{partner_id}": {
			"delete": {
				"summary": "Delete a partner",
				"tags": [
					"partners"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "The owner partner can never be deleted.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Partner ID",
						"name": "partner_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/partners/{partner_id}/ledger-entries": {
			"post": {
				"summary": "Add a manual partner ledger entry",
				"tags": [
					"partners"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Partner ID",
						"name": "partner_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Ledger entry",
						"name": "entry",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateLedgerEntryRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.PartnerLedgerEntry"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/periods": {
			"get": {
				"summary": "Get the period state",
				"tags": [
					"periods"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the active period and the closed period history.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodStateResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/periods/close": {
			"post": {
				"summary": "Close the active period",
				"tags": [
					"periods"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Snapshots the active period's financials and closes it. The full snapshot is returned.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.ClosedPeriod"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Incomplete configuration",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/periods/open": {
			"post": {
				"summary": "Open a period",
				"tags": [
					"periods"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Makes a YYYY-MM period the active one. Fails while another period is open or when the period is already closed.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Period to open",
						"name": "period",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.OpenPeriodRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PeriodStateResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/periods/{period}/financials": {
			"get": {
				"summary": "Get period financials",
				"tags": [
					"periods"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Computes the financials of any period. Closed periods return their stored snapshot.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Period (YYYY-MM)",
						"name": "period",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.PeriodFinancials"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Incomplete configuration",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/records/{collection}": {
			"post": {
				"summary": "Create or replace a record",
				"tags": [
					"records"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Stores a record document in the path collection. Records dated in a closed period are read only.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Collection",
						"name": "collection",
						"in": "path",
						"required": true,
						"type": "string",
						"enum": [
							"projects",
							"assets",
							"partners",
							"ad_costs",
							"commissions",
							"expenses",
							"exchanges",
							"ad_fund_transfers",
							"tax_payments",
							"liabilities",
							"liability_payments",
							"receivables",
							"receivable_payments",
							"capital_inflows",
							"withdrawals",
							"partner_ledger_entries"
						]
					},
					{
						"description": "Record document",
						"name": "record",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.RecordResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/records/{collection}/{record_id}": {
			"delete": {
				"summary": "Delete a record",
				"tags": [
					"records"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Collection",
						"name": "collection",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Record ID",
						"name": "record_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/tax-settings": {
			"get": {
				"summary": "Get tax settings",
				"tags": [
					"tax-settings"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns 204 when tax is not configured for the workplace.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.TaxSettings"
						}
					},
					"204": {
						"description": "Not configured"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"summary": "Save tax settings",
				"tags": [
					"tax-settings"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Tax settings",
						"name": "settings",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.TaxSettings"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.TaxSettings"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"422": {
						"description": "Incomplete configuration",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/workplaces/{workplace_id}/trusts": {
			"post": {
				"summary": "Trust another workplace",
				"tags": [
					"workplaces"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Folds another workplace's shared records into this workplace's reports.",
				"parameters": [
					{
						"description": "Workplace ID",
						"name": "workplace_id",
						"in": "path",
						"required": true,
						"type": "string"
					},
					{
						"description": "Trusted workplace",
						"name": "trust",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.TrustWorkplaceRequest"
						}
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.Asset": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"workplaceId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"initialBalance": {
					"type": "string",
					"example": "0"
				},
				"balance": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"id"
			]
		},
		"domain.CashFlowBucket": {
			"type": "object",
			"properties": {
				"inflows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.CashFlowLine"
					}
				},
				"outflows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.CashFlowLine"
					}
				},
				"totalInflow": {
					"type": "string",
					"example": "0"
				},
				"totalOutflow": {
					"type": "string",
					"example": "0"
				},
				"net": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.CashFlowLine": {
			"type": "object",
			"properties": {
				"recordId": {
					"type": "string"
				},
				"assetId": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"label": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.CashFlowStatement": {
			"type": "object",
			"properties": {
				"currency": {
					"type": "string"
				},
				"operating": {
					"$ref": "#/definitions/domain.CashFlowBucket"
				},
				"investing": {
					"$ref": "#/definitions/domain.CashFlowBucket"
				},
				"financing": {
					"$ref": "#/definitions/domain.CashFlowBucket"
				},
				"beginningBalance": {
					"type": "string",
					"example": "0"
				},
				"netChange": {
					"type": "string",
					"example": "0"
				},
				"endBalance": {
					"type": "string",
					"example": "0"
				},
				"assetsEndBalance": {
					"type": "string",
					"example": "0"
				},
				"reconciled": {
					"type": "boolean"
				}
			}
		},
		"domain.ClosedPeriod": {
			"type": "object",
			"properties": {
				"workplaceId": {
					"type": "string"
				},
				"period": {
					"type": "string"
				},
				"financials": {
					"$ref": "#/definitions/domain.PeriodFinancials"
				},
				"closedAt": {
					"type": "string",
					"format": "date-time"
				},
				"closedBy": {
					"type": "string"
				}
			}
		},
		"domain.DebtPosition": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"totalAmount": {
					"type": "string",
					"example": "0"
				},
				"paid": {
					"type": "string",
					"example": "0"
				},
				"outstanding": {
					"type": "string",
					"example": "0"
				},
				"settled": {
					"type": "boolean"
				}
			}
		},
		"domain.Partner": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"loginEmail": {
					"type": "string"
				},
				"isSelf": {
					"type": "boolean"
				}
			},
			"required": [
				"id"
			]
		},
		"domain.PartnerLedger": {
			"type": "object",
			"properties": {
				"partnerId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"isSelf": {
					"type": "boolean"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PartnerLedgerLine"
					}
				},
				"totalInflow": {
					"type": "string",
					"example": "0"
				},
				"totalOutflow": {
					"type": "string",
					"example": "0"
				},
				"balance": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.PartnerLedgerEntry": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"partnerId": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				},
				"description": {
					"type": "string"
				}
			},
			"required": [
				"id",
				"partnerId",
				"date"
			]
		},
		"domain.PartnerLedgerLine": {
			"type": "object",
			"properties": {
				"entry": {
					"$ref": "#/definitions/domain.PartnerLedgerEntry"
				},
				"automatic": {
					"type": "boolean"
				},
				"runningBalance": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.PartnerPnl": {
			"type": "object",
			"properties": {
				"partnerId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"revenue": {
					"type": "string",
					"example": "0"
				},
				"cost": {
					"type": "string",
					"example": "0"
				},
				"profit": {
					"type": "string",
					"example": "0"
				},
				"inputVat": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.PeriodAssetDetail": {
			"type": "object",
			"properties": {
				"assetId": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"openingBalance": {
					"type": "string",
					"example": "0"
				},
				"inflow": {
					"type": "string",
					"example": "0"
				},
				"outflow": {
					"type": "string",
					"example": "0"
				},
				"closingBalance": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.PeriodFinancials": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"pnl": {
					"$ref": "#/definitions/domain.PnL"
				},
				"tax": {
					"$ref": "#/definitions/domain.TaxResult"
				},
				"cashFlows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.CashFlowStatement"
					}
				},
				"assets": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PeriodAssetDetail"
					}
				},
				"liabilities": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.DebtPosition"
					}
				},
				"receivables": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.DebtPosition"
					}
				},
				"warnings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Warning"
					}
				}
			}
		},
		"domain.PnL": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"totalRevenue": {
					"type": "string",
					"example": "0"
				},
				"totalCost": {
					"type": "string",
					"example": "0"
				},
				"totalProfit": {
					"type": "string",
					"example": "0"
				},
				"adCost": {
					"type": "string",
					"example": "0"
				},
				"miscCost": {
					"type": "string",
					"example": "0"
				},
				"soloRevenue": {
					"type": "string",
					"example": "0"
				},
				"soloCost": {
					"type": "string",
					"example": "0"
				},
				"partnershipRevenue": {
					"type": "string",
					"example": "0"
				},
				"partnershipCost": {
					"type": "string",
					"example": "0"
				},
				"inputVat": {
					"type": "string",
					"example": "0"
				},
				"myRevenue": {
					"type": "string",
					"example": "0"
				},
				"myCost": {
					"type": "string",
					"example": "0"
				},
				"myProfit": {
					"type": "string",
					"example": "0"
				},
				"myInputVat": {
					"type": "string",
					"example": "0"
				},
				"partnerPnlDetails": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PartnerPnl"
					}
				}
			}
		},
		"domain.TaxResult": {
			"type": "object",
			"properties": {
				"method": {
					"type": "string"
				},
				"revenueBase": {
					"type": "string",
					"example": "0"
				},
				"separationAmount": {
					"type": "string",
					"example": "0"
				},
				"taxableRevenue": {
					"type": "string",
					"example": "0"
				},
				"outputVat": {
					"type": "string",
					"example": "0"
				},
				"inputVat": {
					"type": "string",
					"example": "0"
				},
				"netVat": {
					"type": "string",
					"example": "0"
				},
				"profitBase": {
					"type": "string",
					"example": "0"
				},
				"incomeTax": {
					"type": "string",
					"example": "0"
				},
				"taxPayable": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"domain.TaxSettings": {
			"type": "object",
			"properties": {
				"method": {
					"type": "string"
				},
				"revenueRate": {
					"type": "string",
					"example": "0"
				},
				"revenueBase": {
					"type": "string"
				},
				"taxSeparationAmount": {
					"type": "string",
					"example": "0"
				},
				"vatRate": {
					"type": "string",
					"example": "0"
				},
				"vatOutputBase": {
					"type": "string"
				},
				"vatInputBase": {
					"type": "string"
				},
				"inputVatMode": {
					"type": "string"
				},
				"manualInputVat": {
					"type": "string",
					"example": "0"
				},
				"incomeRate": {
					"type": "string",
					"example": "0"
				},
				"profitBase": {
					"type": "string"
				}
			},
			"required": [
				"method"
			]
		},
		"domain.Warning": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"recordId": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"dto.AddAdAccountRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"currency": {
					"type": "string"
				},
				"initialBalance": {
					"type": "string",
					"example": "0"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.AddAdAccountsRequest": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.AddAdAccountRequest"
					}
				}
			},
			"required": [
				"accounts"
			]
		},
		"dto.ClosedPeriodSummary": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				},
				"closedAt": {
					"type": "string",
					"format": "date-time"
				},
				"closedBy": {
					"type": "string"
				},
				"totalProfit": {
					"type": "string",
					"example": "0"
				},
				"myProfit": {
					"type": "string",
					"example": "0"
				},
				"taxPayable": {
					"type": "string",
					"example": "0"
				}
			}
		},
		"dto.CreateLedgerEntryRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"type": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0"
				},
				"description": {
					"type": "string"
				}
			},
			"required": [
				"date",
				"type"
			]
		},
		"dto.CreatePartnerRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"loginEmail": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.CreateWorkplaceRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"ownerName": {
					"type": "string"
				}
			},
			"required": [
				"name"
			]
		},
		"dto.ListWorkplacesResponse": {
			"type": "object",
			"properties": {
				"workplaces": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.WorkplaceResponse"
					}
				}
			}
		},
		"dto.OpenPeriodRequest": {
			"type": "object",
			"properties": {
				"period": {
					"type": "string"
				}
			},
			"required": [
				"period"
			]
		},
		"dto.PartnerLedgersResponse": {
			"type": "object",
			"properties": {
				"ledgers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.PartnerLedger"
					}
				},
				"warnings": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Warning"
					}
				}
			}
		},
		"dto.PeriodStateResponse": {
			"type": "object",
			"properties": {
				"workplaceID": {
					"type": "string"
				},
				"activePeriod": {
					"type": "string"
				},
				"closed": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.ClosedPeriodSummary"
					}
				}
			}
		},
		"dto.RecordResponse": {
			"type": "object",
			"properties": {
				"workplaceID": {
					"type": "string"
				},
				"collection": {
					"type": "string"
				},
				"recordID": {
					"type": "string"
				},
				"recordDate": {
					"type": "string"
				},
				"record": {
					"type": "object"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string",
					"format": "date-time"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
		},
		"dto.TrustWorkplaceRequest": {
			"type": "object",
			"properties": {
				"trustedWorkplaceID": {
					"type": "string"
				}
			},
			"required": [
				"trustedWorkplaceID"
			]
		},
		"dto.WorkplaceResponse": {
			"type": "object",
			"properties": {
				"workplaceID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"isActive": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string",
					"format": "date-time"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Affiliate Ledger API",
	Description:      "Bookkeeping backend for affiliate marketing workplaces: records, periods, financial statements and partner ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
