package globals

var (
	JwtSecret = []byte("your_secret_key") // overwritten from JWT_SECRET at startup
)

// Context keys
type ContextKey string

const ViewerKey ContextKey = "viewer"
const RequestIDKey ContextKey = "requestId"
