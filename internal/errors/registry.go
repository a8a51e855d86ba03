package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

const docBase = "https://vango.dev/docs/jsx/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Tree errors (E100-E119)
	"E100": {
		Category: CategoryTree,
		Message:  "Invalid element description",
		DocURL:   docBase + "E100",
	},
	"E101": {
		Category: CategoryTree,
		Message:  "Malformed tree document",
		Detail:   "The input could not be decoded as JSON or YAML.",
		DocURL:   docBase + "E101",
	},
	"E102": {
		Category: CategoryTree,
		Message:  "Unsupported child value",
		DocURL:   docBase + "E102",
	},
	"E103": {
		Category: CategoryTree,
		Message:  "Tree document not found",
		DocURL:   docBase + "E103",
	},

	// Config errors (E120-E139)
	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid jsx.json",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		DocURL:   docBase + "E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Unknown output format",
		Detail:   "Supported formats are json, msgpack and binary.",
		DocURL:   docBase + "E123",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Invalid request body limit",
		DocURL:   docBase + "E124",
	},

	// Wire errors (E140-E159)
	"E140": {
		Category: CategoryWire,
		Message:  "Snapshot encoding failed",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryWire,
		Message:  "Snapshot decoding failed",
		DocURL:   docBase + "E141",
	},

	// Transform errors (E160-E179)
	"E160": {
		Category: CategoryTransform,
		Message:  "className must be a string",
		DocURL:   docBase + "E160",
	},
	"E161": {
		Category: CategoryTransform,
		Message:  "id must be a string",
		DocURL:   docBase + "E161",
	},
	"E162": {
		Category: CategoryTransform,
		Message:  "Module value must be a map",
		DocURL:   docBase + "E162",
	},
	"E163": {
		Category: CategoryTransform,
		Message:  "Unsupported child value",
		DocURL:   docBase + "E163",
	},
	"E164": {
		Category: CategoryTransform,
		Message:  "Unsupported tag",
		DocURL:   docBase + "E164",
	},
	"E165": {
		Category: CategoryTransform,
		Message:  "Class module must map names to booleans",
		DocURL:   docBase + "E165",
	},

	// CLI errors (E180-E199)
	"E180": {
		Category: CategoryCLI,
		Message:  "Cannot write output",
		DocURL:   docBase + "E180",
	},
	"E181": {
		Category: CategoryCLI,
		Message:  "Deprecated aliases found",
		DocURL:   docBase + "E181",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
