package constvars

// RegexEmailSeparatorClass excludes what a browser treats as whitespace:
// ASCII space and controls, Unicode separators, and the BOM.
const RegexEmailSeparatorClass = `[^\s\v\p{Z}\x{FEFF}@]`

const RegexPortalEmail = `^` + RegexEmailSeparatorClass + `+@` + RegexEmailSeparatorClass + `+\.` + RegexEmailSeparatorClass + `+$`
