package skytap

// Record is a schema-free representation of one Skytap API entity: the
// response body decoded verbatim, keyed by JSON field name. The generic
// ResourcesClient returns Records; the typed resource structs below are
// convenience projections over the same wire data.
type Record map[string]any

// Runstate represents the execution state of an environment or VM.
type Runstate string

const (
	RunstateRunning   Runstate = "running"
	RunstateStopped   Runstate = "stopped"
	RunstateSuspended Runstate = "suspended"
	RunstateHalted    Runstate = "halted"
	RunstateReset     Runstate = "reset"
	RunstateBusy      Runstate = "busy"
)

// Resource is the base identity shared by Skytap API resources.
type Resource struct {
	ID  string `json:"id"            yaml:"id"`
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// User represents a Skytap user account.
type User struct {
	Resource

	LoginName        string `json:"login_name"                  yaml:"login_name"`
	FirstName        string `json:"first_name,omitempty"        yaml:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"         yaml:"last_name,omitempty"`
	Title            string `json:"title,omitempty"             yaml:"title,omitempty"`
	Email            string `json:"email"                       yaml:"email"`
	AccountRole      string `json:"account_role,omitempty"      yaml:"account_role,omitempty"`
	TimeZone         string `json:"time_zone,omitempty"         yaml:"time_zone,omitempty"`
	CanImport        bool   `json:"can_import"                  yaml:"can_import"`
	CanExport        bool   `json:"can_export"                  yaml:"can_export"`
	HasPublicLibrary bool   `json:"has_public_library"          yaml:"has_public_library"`
	SSOEnabled       bool   `json:"sso_enabled"                 yaml:"sso_enabled"`
	Deleted          bool   `json:"deleted,omitempty"           yaml:"deleted,omitempty"`
	LastLogin        string `json:"last_login,omitempty"        yaml:"last_login,omitempty"`
	DepartmentURL    string `json:"department_url,omitempty"    yaml:"department_url,omitempty"`
}

// CreateUserRequest represents a request to create a user.
//
// AccountRole defaults to "standard_user", TimeZone to
// "Pacific Time (US & Canada)", and SSOEnabled to true when left unset;
// the remaining boolean flags default to false. LoginName, Email,
// FirstName, and LastName are required by the API.
type CreateUserRequest struct {
	LoginName        string `json:"login_name"                   yaml:"login_name"`
	Email            string `json:"email"                        yaml:"email"`
	FirstName        string `json:"first_name"                   yaml:"first_name"`
	LastName         string `json:"last_name"                    yaml:"last_name"`
	Title            string `json:"title,omitempty"              yaml:"title,omitempty"`
	AccountRole      string `json:"account_role,omitempty"       yaml:"account_role,omitempty"`
	TimeZone         string `json:"time_zone,omitempty"          yaml:"time_zone,omitempty"`
	CanImport        *bool  `json:"can_import,omitempty"         yaml:"can_import,omitempty"`
	CanExport        *bool  `json:"can_export,omitempty"         yaml:"can_export,omitempty"`
	HasPublicLibrary *bool  `json:"has_public_library,omitempty" yaml:"has_public_library,omitempty"`
	SSOEnabled       *bool  `json:"sso_enabled,omitempty"        yaml:"sso_enabled,omitempty"`
}

// Environment represents a Skytap environment. The REST API calls this
// resource a "configuration"; the paths used on the wire reflect that.
type Environment struct {
	Resource

	Name              string    `json:"name"                          yaml:"name"`
	Description       string    `json:"description,omitempty"         yaml:"description,omitempty"`
	Error             string    `json:"error,omitempty"               yaml:"error,omitempty"`
	Runstate          Runstate  `json:"runstate"                      yaml:"runstate"`
	RateLimited       bool      `json:"rate_limited,omitempty"        yaml:"rate_limited,omitempty"`
	Routable          bool      `json:"routable,omitempty"            yaml:"routable,omitempty"`
	SuspendOnIdle     *int      `json:"suspend_on_idle,omitempty"     yaml:"suspend_on_idle,omitempty"`
	OwnerURL          string    `json:"owner,omitempty"               yaml:"owner,omitempty"`
	TemplateURL       string    `json:"template_url,omitempty"        yaml:"template_url,omitempty"`
	VMCount           int       `json:"vm_count,omitempty"            yaml:"vm_count,omitempty"`
	SVMs              int       `json:"svms,omitempty"                yaml:"svms,omitempty"`
	Storage           int64     `json:"storage,omitempty"             yaml:"storage,omitempty"`
	CanSaveAsTemplate bool      `json:"can_save_as_template,omitempty" yaml:"can_save_as_template,omitempty"`
	LastRun           string    `json:"last_run,omitempty"            yaml:"last_run,omitempty"`
	VMs               []VM      `json:"vms,omitempty"                 yaml:"vms,omitempty"`
	Networks          []Network `json:"networks,omitempty"            yaml:"networks,omitempty"`
}

// Template represents a Skytap template from which environments are created.
type Template struct {
	Resource

	Name        string    `json:"name"                  yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Public      bool      `json:"public,omitempty"      yaml:"public,omitempty"`
	Busy        bool      `json:"busy,omitempty"        yaml:"busy,omitempty"`
	Region      string    `json:"region,omitempty"      yaml:"region,omitempty"`
	SVMs        int       `json:"svms,omitempty"        yaml:"svms,omitempty"`
	Storage     int64     `json:"storage,omitempty"     yaml:"storage,omitempty"`
	CanCopy     bool      `json:"can_copy,omitempty"    yaml:"can_copy,omitempty"`
	CanDelete   bool      `json:"can_delete,omitempty"  yaml:"can_delete,omitempty"`
	VMs         []VM      `json:"vms,omitempty"         yaml:"vms,omitempty"`
	Networks    []Network `json:"networks,omitempty"    yaml:"networks,omitempty"`
}

// Department represents a Skytap department.
type Department struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	UserCount   int    `json:"user_count,omitempty"  yaml:"user_count,omitempty"`
}

// Quota represents one department resource quota with its current usage.
// Known quota IDs are svm_hours, concurrent_svms, storage, and concurrent_vms.
type Quota struct {
	ID           string `json:"id"                     yaml:"id"`
	Units        string `json:"units,omitempty"        yaml:"units,omitempty"`
	Limit        *int64 `json:"limit"                  yaml:"limit"`
	Usage        int64  `json:"usage,omitempty"        yaml:"usage,omitempty"`
	Subscription *int64 `json:"subscription,omitempty" yaml:"subscription,omitempty"`
}

// QuotaLimit sets the limit for a single quota ID. A nil Limit removes
// the department-level limit.
type QuotaLimit struct {
	ID    string `json:"id"    yaml:"id"`
	Limit *int64 `json:"limit" yaml:"limit"`
}

// Project represents a Skytap project grouping environments and templates.
type Project struct {
	Resource

	Name               string `json:"name"                           yaml:"name"`
	Summary            string `json:"summary,omitempty"              yaml:"summary,omitempty"`
	AutoAddRoleName    string `json:"auto_add_role_name,omitempty"   yaml:"auto_add_role_name,omitempty"`
	ShowProjectMembers bool   `json:"show_project_members,omitempty" yaml:"show_project_members,omitempty"`
}
