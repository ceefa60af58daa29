// Package docs registers the OpenAPI (Swagger 2.0) description of the POS API
// with swag, so gin-swagger can serve it under /swagger.
package docs

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/swaggo/swag/v2"
)

// Info holds the top level document metadata. cmd/server overrides Version
// and Host before the first request.
var Info = struct {
	Title       string
	Description string
	Version     string
	Host        string
	BasePath    string
}{
	Title:       "POS Backend API",
	Description: "Multi-tenant point of sale API: businesses, catalog, partners, purchases, orders and stock.",
	Version:     "1.0",
	BasePath:    "/api/v1",
}

// lifecycle describes one trashable resource
type lifecycle struct {
	tag        string
	collection string
	idParam    string
	singular   string
	bodyRef    string
	// idempotent creates accept an Idempotency-Key header
	idempotent bool
}

var resources = []lifecycle{
	{tag: "businesses", collection: "/businesses", idParam: "business_id", singular: "business", bodyRef: "business.CreateBusinessRequest"},
	{tag: "categories", collection: "/businesses/{business_id}/categories", idParam: "id", singular: "category", bodyRef: "catalog.CreateCategoryRequest"},
	{tag: "products", collection: "/businesses/{business_id}/products", idParam: "id", singular: "product", bodyRef: "catalog.CreateProductRequest"},
	{tag: "customers", collection: "/businesses/{business_id}/customers", idParam: "id", singular: "customer", bodyRef: "partner.CreateContactRequest"},
	{tag: "suppliers", collection: "/businesses/{business_id}/suppliers", idParam: "id", singular: "supplier", bodyRef: "partner.CreateContactRequest"},
	{tag: "purchases", collection: "/businesses/{business_id}/purchases", idParam: "id", singular: "purchase", bodyRef: "trade.CreatePurchaseRequest", idempotent: true},
	{tag: "orders", collection: "/businesses/{business_id}/orders", idParam: "id", singular: "order", bodyRef: "trade.CreateOrderRequest", idempotent: true},
	{tag: "tasks", collection: "/tasks", idParam: "id", singular: "task", bodyRef: "task.CreateTaskRequest"},
}

type document struct {
	once sync.Once
	doc  string
}

var swaggerDoc = &document{}

// ReadDoc implements swag.Swagger
func (d *document) ReadDoc() string {
	d.once.Do(func() {
		raw, err := json.Marshal(build())
		if err != nil {
			d.doc = "{}"
			return
		}
		d.doc = string(raw)
	})
	return d.doc
}

func init() {
	swag.Register(swag.Name, swaggerDoc)
}

type object = map[string]any

func build() object {
	paths := object{}
	for _, r := range resources {
		addLifecycle(paths, r)
	}

	paths["/businesses/{business_id}/inventory/audit"] = object{
		"get": operation("inventory", "Audit stock against purchase and order history", "", pathParams("business_id"), false),
	}
	paths["/health"] = object{"get": public(operation("system", "Service health with database status", "", nil, false))}
	paths["/system/info"] = object{"get": public(operation("system", "Service information", "", nil, false))}
	paths["/system/ping"] = object{"get": public(operation("system", "Liveness probe", "", nil, false))}

	return object{
		"swagger": "2.0",
		"info": object{
			"title":       Info.Title,
			"description": Info.Description,
			"version":     Info.Version,
		},
		"host":     Info.Host,
		"basePath": Info.BasePath,
		"schemes":  []string{},
		"paths":    paths,
		"securityDefinitions": object{
			"BearerAuth": object{
				"type":        "apiKey",
				"in":          "header",
				"name":        "Authorization",
				"description": `Bearer token authentication. Format: "Bearer {token}"`,
			},
		},
		"definitions": object{
			"dto.Response": object{
				"type": "object",
				"properties": object{
					"success": object{"type": "boolean"},
					"data":    object{},
					"error":   object{"$ref": "#/definitions/dto.ErrorInfo"},
					"meta":    object{"$ref": "#/definitions/dto.Meta"},
				},
			},
			"dto.ErrorInfo": object{
				"type": "object",
				"properties": object{
					"code":       object{"type": "string"},
					"message":    object{"type": "string"},
					"request_id": object{"type": "string"},
				},
			},
			"dto.Meta": object{
				"type": "object",
				"properties": object{
					"total":       object{"type": "integer"},
					"page":        object{"type": "integer"},
					"page_size":   object{"type": "integer"},
					"total_pages": object{"type": "integer"},
				},
			},
		},
	}
}

func addLifecycle(paths object, r lifecycle) {
	scope := scopeParams(r.collection)
	item := r.collection + "/{" + r.idParam + "}"
	itemParams := append(pathParams(scope...), pathParams(r.idParam)...)

	listParams := append(pathParams(scope...),
		queryParam("trashed", "boolean", "List trashed instead of active rows"),
		queryParam("page", "integer", "Page number"),
		queryParam("page_size", "integer", "Page size (max 100)"),
		queryParam("search", "string", "Name filter"),
	)

	createParams := pathParams(scope...)
	if r.idempotent {
		createParams = append(createParams, object{
			"name":        "Idempotency-Key",
			"in":          "header",
			"type":        "string",
			"maxLength":   255,
			"description": "Replays of a key within its TTL are rejected with 409",
		})
	}

	paths[r.collection] = object{
		"get":  operation(r.tag, "List "+r.tag, "", listParams, false),
		"post": operation(r.tag, "Create a "+r.singular, r.bodyRef, createParams, true),
	}
	paths[item] = object{
		"get":    operation(r.tag, "Get a "+r.singular, "", itemParams, false),
		"put":    operation(r.tag, "Update a "+r.singular, "", itemParams, true),
		"delete": operation(r.tag, "Trash an active "+r.singular+", or permanently delete a trashed one", "", itemParams, false),
	}
	paths[item+"/restore"] = object{
		"post": operation(r.tag, "Restore a trashed "+r.singular, "", itemParams, false),
	}
	paths[item+"/permanent"] = object{
		"delete": operation(r.tag, "Permanently delete a "+r.singular, "", itemParams, false),
	}
	if r.tag != "tasks" {
		show := operation(r.tag, "Get a "+r.singular+", or redirect to the list when it does not exist", "", itemParams, false)
		show["responses"].(object)["303"] = object{"description": "See Other"}
		paths[item+"/view"] = object{"get": show}
	}
}

// scopeParams lists the path parameters of a collection route
func scopeParams(route string) []string {
	var params []string
	for _, segment := range strings.Split(route, "/") {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			params = append(params, strings.Trim(segment, "{}"))
		}
	}
	return params
}

func pathParams(names ...string) []object {
	params := make([]object, 0, len(names))
	for _, name := range names {
		params = append(params, object{
			"name":     name,
			"in":       "path",
			"required": true,
			"type":     "string",
			"format":   "uuid",
		})
	}
	return params
}

func queryParam(name, typ, description string) object {
	return object{"name": name, "in": "query", "type": typ, "description": description}
}

func operation(tag, summary, bodyRef string, params []object, withBody bool) object {
	if params == nil {
		params = []object{}
	}
	if withBody {
		schema := object{"type": "object"}
		if bodyRef != "" {
			schema["title"] = bodyRef
		}
		params = append(params, object{"name": "request", "in": "body", "required": true, "schema": schema})
	}
	response := object{"description": "OK", "schema": object{"$ref": "#/definitions/dto.Response"}}
	failure := object{"description": "Error", "schema": object{"$ref": "#/definitions/dto.Response"}}
	return object{
		"tags":       []string{tag},
		"summary":    summary,
		"produces":   []string{"application/json"},
		"consumes":   []string{"application/json"},
		"parameters": params,
		"security":   []object{{"BearerAuth": []string{}}},
		"responses": object{
			"200": response,
			"400": failure,
			"401": failure,
			"404": failure,
			"409": failure,
			"422": failure,
			"500": failure,
		},
	}
}

func public(op object) object {
	delete(op, "security")
	return op
}
