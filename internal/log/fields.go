package log

const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldUserID     = "user_id"
	FieldMonth      = "month"
	FieldCategory   = "category"
	FieldAmount     = "amount"
)

const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentAuth      = "auth"
	ComponentUser      = "user"
	ComponentFinance   = "finance"
	ComponentSeed      = "seed"
	ComponentScheduler = "scheduler"
)

const (
	OpCreate   = "create"
	OpDelete   = "delete"
	OpUpsert   = "upsert"
	OpSummary  = "summary"
	OpExport   = "export"
	OpMigrate  = "migrate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
