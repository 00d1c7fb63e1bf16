// Package roadmap holds the static Data Engineer roadmap content: six
// pillars of topics with their item chips. The assessment question bank
// references these pillars by name.
package roadmap

// Topic is a named group of items inside a pillar.
type Topic struct {
	Name  string
	Items []string
}

// Pillar is one top-level stage of the roadmap.
type Pillar struct {
	ID     string
	Name   string
	Topics []Topic
}

// Roadmap is the full learning path.
type Roadmap struct {
	Title   string
	Pillars []Pillar
}

// DataEngineer returns the Data Engineer roadmap. The content is fixed;
// callers must not mutate the returned value.
func DataEngineer() Roadmap {
	return dataEngineer
}

// PillarNames returns the pillar names in roadmap order.
func PillarNames() []string {
	names := make([]string, len(dataEngineer.Pillars))
	for i, p := range dataEngineer.Pillars {
		names[i] = p.Name
	}
	return names
}

// FindPillar looks a pillar up by name.
func FindPillar(name string) (Pillar, bool) {
	for _, p := range dataEngineer.Pillars {
		if p.Name == name {
			return p, true
		}
	}
	return Pillar{}, false
}

var dataEngineer = Roadmap{
	Title: "Data Engineer Roadmap",
	Pillars: []Pillar{
		{
			ID:   "foundations",
			Name: "Foundations",
			Topics: []Topic{
				{
					Name: "Core Skills",
					Items: []string{
						"Python", "SQL", "Git & GitHub", "Linux Basics",
						"Data Structures & Algorithms", "Networking Fundamentals",
						"Distributed Systems Basics",
					},
				},
			},
		},
		{
			ID:   "data_basics",
			Name: "Data Ecosystem Basics",
			Topics: []Topic{
				{
					Name: "Understanding Data",
					Items: []string{
						"Data Generation", "Sources: DBs, APIs, Logs, IoT",
						"Data Lifecycle: Ingest, Store, Process, Serve",
					},
				},
				{
					Name: "Modeling & Concepts",
					Items: []string{
						"Normalization", "Star Schema", "Snowflake Schema",
						"Slowly Changing Dimensions", "OLTP vs OLAP",
						"CAP Theorem", "Scaling: Horizontal vs Vertical",
					},
				},
			},
		},
		{
			ID:   "storage",
			Name: "Storage & Databases",
			Topics: []Topic{
				{
					Name:  "Relational Databases",
					Items: []string{"MySQL", "PostgreSQL", "SQL Server", "MariaDB", "Oracle"},
				},
				{
					Name: "NoSQL Databases",
					Items: []string{
						"Document: MongoDB, CouchDB", "Column: Cassandra, BigTable, HBase",
						"Graph: Neo4j, Amazon Neptune", "Key-Value: Redis, DynamoDB",
					},
				},
				{
					Name: "Warehouses & Lakes",
					Items: []string{
						"BigQuery", "Amazon Redshift", "Snowflake",
						"S3 Data Lake", "Delta Lake", "Databricks",
					},
				},
				{
					Name: "Modern Architectures",
					Items: []string{
						"Data Mesh", "Data Fabric",
						"Metadata-First Architecture", "Serverless Data Platforms",
					},
				},
			},
		},
		{
			ID:   "pipelines",
			Name: "Data Ingestion & Pipelines",
			Topics: []Topic{
				{
					Name: "Ingestion Types",
					Items: []string{
						"Batch Ingestion", "Streaming Ingestion",
						"Real-Time Ingestion", "Hybrid Approaches",
					},
				},
				{
					Name:  "Pipeline Fundamentals",
					Items: []string{"ETL & ELT", "Extract → Transform → Load"},
				},
				{
					Name:  "Pipeline Tools",
					Items: []string{"Apache Airflow", "dbt", "Luigi", "Prefect"},
				},
				{
					Name:  "Messaging Systems",
					Items: []string{"Apache Kafka", "RabbitMQ", "AWS SQS", "AWS SNS"},
				},
			},
		},
		{
			ID:   "bigdata_infra",
			Name: "Big Data & Infrastructure",
			Topics: []Topic{
				{
					Name:  "Hadoop Ecosystem",
					Items: []string{"HDFS", "YARN", "MapReduce"},
				},
				{
					Name:  "Big Data Engines",
					Items: []string{"Apache Spark"},
				},
				{
					Name:  "Containers & Cluster Management",
					Items: []string{"Docker", "Kubernetes", "GKE", "EKS"},
				},
				{
					Name: "Cloud Platforms",
					Items: []string{
						"AWS: EC2, S3, RDS, Glue",
						"Azure: VMs, Blob Storage, Data Factory",
						"GCP: Compute Engine, GCS, Dataflow",
					},
				},
				{
					Name:  "Infrastructure as Code",
					Items: []string{"Terraform", "AWS CDK", "Google Deployment Manager", "OpenTofu"},
				},
			},
		},
		{
			ID:   "serving_governance",
			Name: "Data Serving & Governance",
			Topics: []Topic{
				{
					Name:  "Analytics & BI",
					Items: []string{"Power BI", "Tableau", "Looker", "Streamlit"},
				},
				{
					Name:  "Reverse ETL",
					Items: []string{"Hightouch", "Census", "Segment"},
				},
				{
					Name: "Security",
					Items: []string{
						"Authentication vs Authorization", "Encryption",
						"Tokenization", "Data Masking", "Data Obfuscation",
					},
				},
				{
					Name: "Governance & Quality",
					Items: []string{
						"Data Lineage", "Metadata Management",
						"Data Interoperability", "Data Quality Monitoring",
						"Privacy Laws: GDPR, ECPA, EU AI Act",
					},
				},
				{
					Name: "Testing",
					Items: []string{
						"Unit Testing", "Integration Testing", "End-to-End Testing",
						"Load Testing", "A/B Testing", "Smoke Testing",
					},
				},
			},
		},
	},
}
