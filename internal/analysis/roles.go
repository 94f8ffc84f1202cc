package analysis

// JobRoles is the selectable target-role catalog
var JobRoles = []string{
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"UI/UX Designer",
	"DevOps Engineer",
	"Data Scientist",
	"Product Manager",
	"Project Manager",
	"Software Architect",
	"QA Engineer",
	"Mobile Developer",
	"Machine Learning Engineer",
}

// roleKeywords maps a role to the keywords screened for during analysis.
// Roles without an entry use defaultKeywords.
var roleKeywords = map[string][]string{
	"Frontend Developer": {
		"JavaScript", "TypeScript", "React", "Redux", "CSS", "HTML",
		"Responsive Design", "NextJS", "Frontend Performance", "REST API",
	},
	"Backend Developer": {
		"Go", "Python", "Java", "SQL", "REST API", "Microservices",
		"PostgreSQL", "Redis", "Docker", "Message Queues",
	},
	"Full Stack Developer": {
		"JavaScript", "TypeScript", "React", "Node.js", "SQL", "REST API",
		"Docker", "CSS", "Git", "Testing",
	},
	"DevOps Engineer": {
		"Kubernetes", "Docker", "Terraform", "CI/CD", "AWS", "Linux",
		"Monitoring", "Ansible", "Shell Scripting", "Networking",
	},
	"Data Scientist": {
		"Python", "Pandas", "SQL", "Machine Learning", "Statistics",
		"TensorFlow", "Data Visualization", "NumPy", "Jupyter", "A/B Testing",
	},
}

// defaultKeywords is the screening set for roles without a dedicated list
var defaultKeywords = []string{
	"JavaScript", "React", "Node.js", "Responsive Design", "REST API", "CSS",
	"TypeScript", "Redux", "NextJS", "Frontend Performance",
}

// KeywordsForRole returns the screening keywords for a role
func KeywordsForRole(role string) []string {
	if kws, ok := roleKeywords[role]; ok {
		return kws
	}
	return defaultKeywords
}
