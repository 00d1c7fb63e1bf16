package assessment

// Question is a single fixed multiple-choice question tied to a roadmap
// pillar and topic. The bank is defined in code and immutable at runtime.
type Question struct {
	ID           string
	Pillar       string
	Topic        string
	Text         string
	Options      [4]string
	CorrectIndex int
	Difficulty   int
}

// Answer records how a question was answered. Pillar and Topic always
// come from the source question, never from user input.
type Answer struct {
	QuestionID    string
	Pillar        string
	Topic         string
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
}

// Questions returns the fixed 5-question check-up, each mapped to a
// pillar/topic from the Data Engineer roadmap.
func Questions() []Question {
	return []Question{
		{
			ID:     "q1_python_basics",
			Pillar: "Foundations",
			Topic:  "Core Skills - Python",
			Text:   "In Python, what is the best way to iterate over a list of items with their index?",
			Options: [4]string{
				"Use a classic for-loop with range(len(items))",
				"Use enumerate(items) inside the for-loop",
				"Manually increment a counter variable inside the loop",
				"You cannot access index during iteration",
			},
			CorrectIndex: 1,
			Difficulty:   1,
		},
		{
			ID:     "q2_sql_joins",
			Pillar: "Storage & Databases",
			Topic:  "Relational Databases - SQL",
			Text:   "Which SQL JOIN returns all rows from the left table and matching rows from the right table?",
			Options: [4]string{
				"INNER JOIN",
				"LEFT JOIN (LEFT OUTER JOIN)",
				"RIGHT JOIN (RIGHT OUTER JOIN)",
				"FULL OUTER JOIN",
			},
			CorrectIndex: 1,
			Difficulty:   1,
		},
		{
			ID:     "q3_etl_elt",
			Pillar: "Data Ingestion & Pipelines",
			Topic:  "Pipeline Fundamentals - ETL vs ELT",
			Text:   "What is the main difference between ETL and ELT?",
			Options: [4]string{
				"ETL transforms data after loading it into the warehouse; ELT transforms before loading",
				"ETL transforms data before loading into the warehouse; ELT transforms after loading",
				"They are exactly the same",
				"ETL is only for batch, ELT only for streaming",
			},
			CorrectIndex: 1,
			Difficulty:   2,
		},
		{
			ID:     "q4_batch_streaming",
			Pillar: "Data Ingestion & Pipelines",
			Topic:  "Ingestion Types - Batch vs Streaming",
			Text:   "Which statement best describes streaming ingestion?",
			Options: [4]string{
				"Data is loaded once per day as a single bulk file",
				"Data is ingested as continuous events with low latency",
				"Data is copied manually by engineers",
				"Streaming ingestion does not support real-time analytics",
			},
			CorrectIndex: 1,
			Difficulty:   2,
		},
		{
			ID:     "q5_cloud_services",
			Pillar: "Big Data & Infrastructure",
			Topic:  "Cloud Platforms - AWS / Azure / GCP",
			Text:   "In a typical cloud architecture, which service is most appropriate for object storage?",
			Options: [4]string{
				"Amazon S3 or Azure Blob Storage",
				"Managed relational database (e.g., Amazon RDS)",
				"Virtual machines (EC2, VM, Compute Engine)",
				"Serverless compute (AWS Lambda, Azure Functions)",
			},
			CorrectIndex: 0,
			Difficulty:   2,
		},
	}
}

// LevelLabels maps a level to its display label.
var LevelLabels = map[int]string{
	1: "Beginner",
	2: "Emerging",
	3: "Proficient",
	4: "Advanced",
}
