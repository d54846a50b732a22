package types

// ContextKey namespaces values the root command places on the context.
type ContextKey string

// ClientAppKey holds the initialized *client.App for subcommands.
const ClientAppKey ContextKey = "clientApp"
