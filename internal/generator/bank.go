package generator

import "interview-prep/internal/domain"

// skillEntry binds a resume keyword to its question. The table is a slice,
// not a map, so matching follows table order regardless of where the
// keyword appears in the resume.
type skillEntry struct {
	Skill    string
	Question domain.GeneratedQuestion
}

// skillBank maps resume keywords to one question each.
var skillBank = []skillEntry{
	{
		Skill: "javascript",
		Question: domain.GeneratedQuestion{
			Question: "What is event delegation in JavaScript?",
			Options: []string{
				"Calling events from child to parent",
				"Handling events on parent using event bubbling",
				"Creating custom events",
				"Preventing default events",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "javascript",
		},
	},
	{
		Skill: "react",
		Question: domain.GeneratedQuestion{
			Question: "What causes unnecessary re-renders in React?",
			Options: []string{
				"Using props correctly",
				"Creating new object/array references in render",
				"Using React.memo",
				"Using keys in lists",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "react",
		},
	},
	{
		Skill: "node",
		Question: domain.GeneratedQuestion{
			Question: "How would you handle high load in a Node.js API?",
			Options: []string{
				"Increase server RAM only",
				"Use clustering, caching, and load balancing",
				"Restart the server frequently",
				"Add more console.log statements",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "backend",
		},
	},
	{
		Skill: "python",
		Question: domain.GeneratedQuestion{
			Question: "What is the difference between list and tuple in Python?",
			Options: []string{
				"No difference",
				"Lists are mutable, tuples are immutable",
				"Tuples are faster for all operations",
				"Lists cannot contain numbers",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "easy",
			Topic:              "python",
		},
	},
	{
		Skill: "sql",
		Question: domain.GeneratedQuestion{
			Question: "When should you use a database index?",
			Options: []string{
				"On every column",
				"On frequently queried columns with high cardinality",
				"Never, they slow down queries",
				"Only on primary keys",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "database",
		},
	},
	{
		Skill: "mongodb",
		Question: domain.GeneratedQuestion{
			Question: "What is the benefit of MongoDB's document model?",
			Options: []string{
				"Enforces strict schema",
				"Flexible schema and embedded documents reduce joins",
				"Faster than all SQL databases",
				"Requires less storage",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "database",
		},
	},
	{
		Skill: "aws",
		Question: domain.GeneratedQuestion{
			Question: "What is the purpose of AWS Lambda?",
			Options: []string{
				"Store files",
				"Run serverless functions without managing servers",
				"Host databases",
				"Monitor applications",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "cloud",
		},
	},
	{
		Skill: "docker",
		Question: domain.GeneratedQuestion{
			Question: "What problem does Docker solve?",
			Options: []string{
				"Makes code run faster",
				"Ensures consistent environments across development and production",
				"Replaces version control",
				"Automatically fixes bugs",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "devops",
		},
	},
	{
		Skill: "git",
		Question: domain.GeneratedQuestion{
			Question: "What is the purpose of git rebase?",
			Options: []string{
				"Delete all commits",
				"Rewrite commit history to create a linear timeline",
				"Create a new branch",
				"Push to remote",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "version-control",
		},
	},
	{
		Skill: "api",
		Question: domain.GeneratedQuestion{
			Question: "What is idempotency in REST APIs?",
			Options: []string{
				"Fast API responses",
				"Same request produces same result when called multiple times",
				"API security",
				"API versioning",
			},
			CorrectAnswerIndex: 1,
			Difficulty:         "medium",
			Topic:              "api",
		},
	},
}

// genericPool pads skill matches up to the required question count. It
// must hold at least QuestionCount distinct questions so the padding loop
// always terminates.
var genericPool = []domain.GeneratedQuestion{
	{
		Question: "What is the CAP theorem in distributed systems?",
		Options: []string{
			"Consistency, Availability, Partition tolerance - pick 2",
			"Code, API, Performance",
			"Create, Add, Partition",
			"Cache, API, Protocol",
		},
		CorrectAnswerIndex: 0,
		Difficulty:         "hard",
		Topic:              "system-design",
	},
	{
		Question: "What causes race conditions in concurrent programming?",
		Options: []string{
			"Slow internet",
			"Multiple threads accessing shared state without synchronization",
			"Using async/await",
			"Having multiple functions",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "concurrency",
	},
	{
		Question: "What is the difference between authentication and authorization?",
		Options: []string{
			"They are the same",
			"Authentication verifies identity, authorization grants permissions",
			"Authentication is for APIs only",
			"Authorization is faster",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "easy",
		Topic:              "security",
	},
	{
		Question: "How would you diagnose high latency in a Node.js API?",
		Options: []string{
			"Increase server memory",
			"Profile database queries and async calls",
			"Restart the server",
			"Rewrite the frontend",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "backend",
	},
	{
		Question: "When should you use database transactions?",
		Options: []string{
			"For read-only queries",
			"For dependent write operations",
			"For caching",
			"For indexing",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "database",
	},
	{
		Question: "Why would you use a message queue in a backend system?",
		Options: []string{
			"To speed up UI rendering",
			"To handle async background tasks",
			"To replace REST APIs",
			"To store logs",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "architecture",
	},
	{
		Question: "What leads to memory leaks in Node.js applications?",
		Options: []string{
			"Async/await usage",
			"Uncleared event listeners",
			"REST APIs",
			"Promises",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "node",
	},
	{
		Question: "What causes unnecessary re-renders in React?",
		Options: []string{
			"Using props correctly",
			"Changing state references",
			"Using memoization",
			"Using keys in lists",
		},
		CorrectAnswerIndex: 1,
		Difficulty:         "medium",
		Topic:              "react",
	},
}

// PreseededQuestions returns a copy of a fixed question set used as the
// last-resort guard when generation output fails validation.
func PreseededQuestions() []domain.GeneratedQuestion {
	preseeded := make([]domain.GeneratedQuestion, len(genericPool[3:]))
	copy(preseeded, genericPool[3:])
	return preseeded
}
