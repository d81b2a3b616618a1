package types

// ContextKey is the type for values the root command places on the
// command context.
type ContextKey string

// AppKey locates the initialized *app.App on the command context.
const AppKey ContextKey = "app"
