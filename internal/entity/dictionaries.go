package entity

// alias maps a lower-cased substring to its canonical value.
type alias struct {
	key       string
	canonical string
}

// Dictionary order is load-bearing: extraction takes the first alias
// whose key is contained in the message. When one alias key is a
// substring of another ("react" vs "react native"), the more specific
// key must be declared first or it can never win.

var technologyAliases = []alias{
	{"react native", "React Native"},
	{"reactjs", "React"},
	{"react", "React"},
	{"typescript", "TypeScript"},
	{"javascript", "JavaScript"},
	{"node.js", "Node.js"},
	{"nodejs", "Node.js"},
	{"node", "Node.js"},
	{"next.js", "Next.js"},
	{"nextjs", "Next.js"},
	{"tailwind", "Tailwind CSS"},
	{"postgresql", "PostgreSQL"},
	{"postgres", "PostgreSQL"},
	{"mongodb", "MongoDB"},
	{"mongo", "MongoDB"},
	{"redis", "Redis"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"aws", "AWS"},
	{"amazon web services", "AWS"},
	{"firebase", "Firebase"},
	{"golang", "Go"},
	{"prisma", "Prisma"},
	{"trpc", "tRPC"},
	{"stripe", "Stripe"},
}

var projectAliases = []alias{
	{"invotrek", "invotrek"},
	{"invoicing app", "invotrek"},
	{"invoice", "invotrek"},
	{"devboard", "devboard"},
	{"kanban", "devboard"},
	{"fitpulse", "fitpulse"},
	{"workout", "fitpulse"},
	{"fitness app", "fitpulse"},
	{"portfolio site", "portfolio"},
	{"this site", "portfolio"},
	{"this website", "portfolio"},
}

var categoryAliases = []alias{
	{"front-end", "frontend"},
	{"front end", "frontend"},
	{"frontend", "frontend"},
	{"back-end", "backend"},
	{"back end", "backend"},
	{"backend", "backend"},
	{"databases", "database"},
	{"database", "database"},
	{"devops", "devops"},
	{"infrastructure", "devops"},
	{"cloud", "devops"},
	{"mobile", "mobile"},
	{"ios", "mobile"},
	{"android", "mobile"},
}
