package domain

// ImportTable maps a macro name to the module path it was declared to come
// from. It is produced per parse call and ephemeral; when the same macro is
// declared twice, the later declaration in document order wins.
type ImportTable map[string]string
