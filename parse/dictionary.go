package parse

import "github.com/poiesic/resumatch/core"

// DefaultSkills is the canonical skill dictionary scanned against resume
// text. Matching is case-insensitive and whole-word; detection order follows
// dictionary order. Callers may supply their own dictionary to ExtractSkills.
var DefaultSkills = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
	"PHP", "Ruby", "Swift", "Kotlin", "Scala",

	// Web
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express",
	"Django", "Flask", "FastAPI", "Spring", "Laravel",

	// Databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch",
	"Oracle", "SQLite", "Cassandra",

	// Cloud and infrastructure
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Jenkins",
	"Terraform", "Ansible", "Git",

	// Data science
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"Pandas", "NumPy",

	// Testing
	"Selenium", "Cypress", "JUnit", "Manual Testing", "Test Automation",

	// Mobile
	"React Native", "Flutter", "Android", "iOS",

	// Other
	"Linux", "Microservices", "REST API", "GraphQL", "Kafka",
}

// categoryKeywords maps each job category to the keywords that vote for it.
// A keyword found in the text counts once; a keyword that also appears in
// the extracted skill list counts double.
var categoryKeywords = map[core.JobCategory][]string{
	core.CategoryBackend: {
		"backend", "server", "api", "database", "python", "java",
		"node.js", "django", "flask", "spring", "microservices",
	},
	core.CategoryFrontend: {
		"frontend", "ui", "ux", "react", "angular", "vue",
		"javascript", "html", "css", "web design",
	},
	core.CategoryFullstack: {
		"fullstack", "full stack", "full-stack", "end-to-end",
	},
	core.CategoryDevOps: {
		"devops", "deployment", "ci/cd", "docker", "kubernetes",
		"aws", "azure", "jenkins", "terraform",
	},
	core.CategoryQA: {
		"qa", "quality assurance", "testing", "test automation",
		"selenium", "cypress", "junit",
	},
	core.CategoryDatabase: {
		"dba", "database administrator", "sql", "mysql",
		"postgresql", "oracle", "data modeling",
	},
	core.CategoryMobile: {
		"mobile", "android", "ios", "react native", "flutter",
		"swift", "kotlin",
	},
	core.CategoryDataScience: {
		"data scientist", "machine learning", "deep learning",
		"tensorflow", "pytorch", "pandas",
	},
}

// knownCities is the fallback location list consulted when no keyed
// location phrase is present in the text.
var knownCities = []string{
	"Bangalore", "Bengaluru", "Hyderabad", "Pune", "Mumbai", "Delhi",
	"Chennai", "Kolkata", "Gurugram", "Gurgaon", "Noida", "Bhubaneswar",
	"Ahmedabad", "Jaipur", "Kochi", "Chandigarh",
	"New York", "San Francisco", "Seattle", "Austin", "Boston", "Chicago",
	"London", "Berlin", "Singapore", "Toronto", "Sydney", "Dubai",
}
