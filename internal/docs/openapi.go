// Package docs builds the machine-readable API description published at
// /swagger. The document is a fixed struct tree assembled once at startup.
package docs

import "encoding/json"

type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Tags       []Tag               `json:"tags,omitempty"`
	Paths      map[string]PathItem `json:"paths"`
	Components Components          `json:"components"`
}

type Info struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

type Tag struct {
	Name string `json:"name"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Patch  *Operation `json:"patch,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	Tags        []string              `json:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty"`
	Description string                `json:"description,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses"`
	Security    []map[string][]string `json:"security,omitempty"`
}

type Parameter struct {
	Name     string  `json:"name"`
	In       string  `json:"in"`
	Required bool    `json:"required,omitempty"`
	Schema   *Schema `json:"schema,omitempty"`
}

type RequestBody struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]MediaType `json:"content"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

type Components struct {
	Schemas         map[string]*Schema        `json:"schemas,omitempty"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes,omitempty"`
}

type SecurityScheme struct {
	Type         string `json:"type"`
	Scheme       string `json:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty"`
	Type       string             `json:"type,omitempty"`
	Format     string             `json:"format,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

func (d *Document) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *Schema) map[string]MediaType {
	return map[string]MediaType{
		"application/json": {Schema: schema},
	}
}

// Build assembles the API description: the five /users operations, their
// schemas and the bearer-auth scheme. The scheme is declared for the docs
// only; no middleware enforces it.
func Build() *Document {
	bearer := []map[string][]string{{"bearerAuth": {}}}

	idParam := Parameter{
		Name:     "id",
		In:       "path",
		Required: true,
		Schema:   &Schema{Type: "integer", Format: "int64"},
	}

	userArray := &Schema{Type: "array", Items: ref("User")}

	return &Document{
		OpenAPI: "3.0.3",
		Info: Info{
			Title:       "Simple CRUD App",
			Description: "CRUD operation on users",
			Version:     "1.0",
		},
		Tags: []Tag{{Name: "users"}},
		Paths: map[string]PathItem{
			"/users": {
				Get: &Operation{
					Tags:        []string{"users"},
					Summary:     "Find all users",
					Description: "Returns the list of all users or by using queries",
					Security:    bearer,
					Parameters: []Parameter{
						{
							Name:   "email",
							In:     "query",
							Schema: &Schema{Type: "string"},
						},
					},
					Responses: map[string]Response{
						"200": {
							Description: "List of users",
							Content:     jsonContent(userArray),
						},
					},
				},
			},
			"/users/{id}": {
				Get: &Operation{
					Tags:        []string{"users"},
					Summary:     "Find one user",
					Description: "Finds a user by id",
					Security:    bearer,
					Parameters:  []Parameter{idParam},
					Responses: map[string]Response{
						"200": {
							Description: "The user",
							Content:     jsonContent(ref("User")),
						},
						"404": {
							Description: "User not found",
							Content:     jsonContent(ref("Error")),
						},
					},
				},
				Patch: &Operation{
					Tags:        []string{"users"},
					Summary:     "Update an existing user",
					Description: "Updates an existing user's information by id",
					Security:    bearer,
					Parameters:  []Parameter{idParam},
					RequestBody: &RequestBody{
						Required: true,
						Content:  jsonContent(ref("UpdateUserRequest")),
					},
					Responses: map[string]Response{
						"200": {
							Description: "The updated user",
							Content:     jsonContent(ref("User")),
						},
						"400": {
							Description: "Validation failure",
							Content:     jsonContent(ref("Error")),
						},
						"404": {
							Description: "User not found",
							Content:     jsonContent(ref("Error")),
						},
					},
				},
				Delete: &Operation{
					Tags:        []string{"users"},
					Summary:     "Delete an existing user",
					Description: "Deletes an existing user by id",
					Security:    bearer,
					Parameters:  []Parameter{idParam},
					Responses: map[string]Response{
						"200": {
							Description: "The deleted user",
							Content:     jsonContent(ref("User")),
						},
						"404": {
							Description: "User not found",
							Content:     jsonContent(ref("Error")),
						},
					},
				},
			},
			"/users/signup": {
				Post: &Operation{
					Tags:        []string{"users"},
					Summary:     "Sign up a new user",
					Description: "Signs up a new user by giving a new email and password",
					Security:    bearer,
					RequestBody: &RequestBody{
						Required: true,
						Content:  jsonContent(ref("CreateUserRequest")),
					},
					Responses: map[string]Response{
						"201": {Description: "User created"},
						"400": {
							Description: "Validation failure",
							Content:     jsonContent(ref("Error")),
						},
					},
				},
			},
		},
		Components: Components{
			Schemas: map[string]*Schema{
				"User": {
					Type: "object",
					Properties: map[string]*Schema{
						"id":       {Type: "integer", Format: "int64"},
						"email":    {Type: "string", Format: "email"},
						"password": {Type: "string"},
					},
					Required: []string{"id", "email", "password"},
				},
				"CreateUserRequest": {
					Type: "object",
					Properties: map[string]*Schema{
						"email":    {Type: "string", Format: "email"},
						"password": {Type: "string"},
					},
					Required: []string{"email", "password"},
				},
				"UpdateUserRequest": {
					Type: "object",
					Properties: map[string]*Schema{
						"email":    {Type: "string", Format: "email"},
						"password": {Type: "string"},
					},
				},
				"Error": {
					Type: "object",
					Properties: map[string]*Schema{
						"statusCode": {Type: "integer"},
						"message":    {Type: "string"},
						"requestId":  {Type: "string"},
					},
					Required: []string{"statusCode", "message"},
				},
			},
			SecuritySchemes: map[string]SecurityScheme{
				"bearerAuth": {
					Type:         "http",
					Scheme:       "bearer",
					BearerFormat: "JWT",
				},
			},
		},
	}
}
