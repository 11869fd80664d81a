package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "disha://profile",
		Name:        "Holistic Profile",
		Description: "Indices, academic streams, career domains, sports clusters and creative fields",
		MimeType:    "text/plain",
	},
	{
		URI:         "disha://scholarships/open",
		Name:        "Open Scholarships",
		Description: "Scholarships not yet closed, soonest deadline first",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
