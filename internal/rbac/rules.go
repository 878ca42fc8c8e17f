package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"viewer": {
		"topics:view",
		"quiz:parse",
		"completion:view",
		"completion:update",
	},
	"editor": {
		"*", // everything
	},
}
