package catalog

// technicalSkills is grouped by the area a skill belongs to.
var technicalSkills = []Group{
	{Name: "programming_languages", Items: []string{
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Ruby", "PHP", "Swift", "Kotlin", "Go",
		"Rust", "Scala", "Perl", "R", "MATLAB", "Dart", "Objective-C", "Visual Basic", "VBA", "PowerShell",
		"Bash", "Shell Scripting", "Assembly", "Fortran", "COBOL", "Lisp", "Haskell", "Clojure", "Groovy", "Lua",
	}},
	{Name: "web_development", Items: []string{
		"HTML", "CSS", "SCSS", "SASS", "Less", "JavaScript", "TypeScript", "jQuery", "React", "Angular", "Vue.js",
		"Svelte", "Next.js", "Gatsby", "Nuxt.js", "Redux", "MobX", "Context API", "GraphQL", "REST API",
		"Node.js", "Express", "Django", "Flask", "Ruby on Rails", "ASP.NET", "Spring Boot", "Laravel", "Symfony",
		"WordPress", "Drupal", "Joomla", "Magento", "Shopify", "WebSockets", "OAuth", "JWT", "AJAX", "JSON",
		"XML", "Bootstrap", "Tailwind CSS", "Material UI", "Chakra UI",
	}},
	{Name: "databases", Items: []string{
		"SQL", "MySQL", "PostgreSQL", "SQLite", "Oracle", "Microsoft SQL Server", "MongoDB", "Firebase",
		"Cassandra", "Redis", "DynamoDB", "Elasticsearch", "Neo4j", "Couchbase", "MariaDB", "Supabase", "CouchDB",
		"InfluxDB", "Fauna", "ACID Compliance", "Database Design", "Normalization", "Indexing",
		"Query Optimization", "Database Migration", "ORM", "Sequelize", "Mongoose", "SQLAlchemy", "Hibernate",
	}},
	{Name: "devops", Items: []string{
		"Git", "GitHub", "GitLab", "Bitbucket", "CI/CD", "Jenkins", "GitHub Actions", "Travis CI", "CircleCI",
		"Docker", "Kubernetes", "Terraform", "Ansible", "Puppet", "Chef", "AWS", "Azure", "Google Cloud",
		"Heroku", "DigitalOcean", "Netlify", "Vercel", "Linux", "Unix", "Windows Server", "Bash",
		"Shell Scripting", "Nginx", "Apache", "Load Balancing", "Monitoring", "Prometheus", "Grafana",
		"ELK Stack", "Logging", "Infrastructure as Code", "Continuous Integration", "Continuous Deployment",
		"Container Orchestration", "Service Mesh", "Istio", "Microservices Architecture",
	}},
	{Name: "data_science", Items: []string{
		"Data Analysis", "Data Visualization", "Machine Learning", "Statistical Analysis",
		"Natural Language Processing", "Computer Vision", "Deep Learning", "TensorFlow", "PyTorch", "Keras",
		"Scikit-learn", "Pandas", "NumPy", "SciPy", "Matplotlib", "Seaborn", "Tableau", "Power BI", "Data Mining",
		"Feature Engineering", "A/B Testing", "Hypothesis Testing", "Regression Analysis", "Classification",
		"Clustering", "Neural Networks", "Random Forest", "Decision Trees", "Support Vector Machines",
		"Dimensionality Reduction", "Time Series Analysis", "Big Data", "Hadoop", "Spark", "ETL",
		"Data Warehousing", "Data Modeling", "Data Governance", "OLAP", "OLTP", "Predictive Modeling",
		"Reinforcement Learning", "Generative AI", "OpenAI API",
	}},
	{Name: "mobile_development", Items: []string{
		"iOS Development", "Android Development", "React Native", "Flutter", "Xamarin", "Swift", "Objective-C",
		"Kotlin", "Java for Android", "SwiftUI", "UIKit", "Android SDK", "Android Jetpack", "Mobile UI Design",
		"Mobile UX", "App Store Connect", "Google Play Console", "Push Notifications", "Mobile Authentication",
		"Offline Storage", "Mobile Analytics", "Mobile App Architecture", "Mobile Testing", "Responsive Design",
		"Cross-Platform Development", "Progressive Web Apps (PWA)", "Hybrid Apps", "Native Apps",
		"Mobile Optimization", "Firebase", "App Performance",
	}},
	{Name: "security", Items: []string{
		"Cybersecurity", "Network Security", "Application Security", "Penetration Testing",
		"Vulnerability Assessment", "Security Auditing", "Encryption", "Authentication", "Authorization", "OAuth",
		"SAML", "OWASP", "Security Compliance", "GDPR", "HIPAA", "PCI DSS", "Risk Management",
		"Security Architecture", "Secure Coding", "Intrusion Detection", "Firewall Management",
		"Identity Management", "Access Control", "Security Information and Event Management (SIEM)",
		"Security Operations Center (SOC)", "Security Awareness", "Incident Response", "Forensics",
		"Malware Analysis",
	}},
}

// softSkills is grouped by behavioural theme.
var softSkills = []Group{
	{Name: "communication", Items: []string{
		"Verbal Communication", "Written Communication", "Presentation Skills", "Active Listening",
		"Public Speaking", "Technical Writing", "Business Writing", "Email Etiquette", "Client Communication",
		"Cross-cultural Communication", "Articulation", "Clarity", "Persuasion", "Negotiation", "Storytelling",
	}},
	{Name: "teamwork", Items: []string{
		"Collaboration", "Team Leadership", "Conflict Resolution", "Relationship Building",
		"Cross-functional Collaboration", "Remote Team Collaboration", "Delegation", "Feedback Giving",
		"Feedback Receiving", "Mentoring", "Coaching", "Knowledge Sharing", "Consensus Building",
		"Team Motivation", "Meeting Facilitation", "Trust Building",
	}},
	{Name: "problem_solving", Items: []string{
		"Critical Thinking", "Analytical Thinking", "Creative Problem Solving", "Decision Making",
		"Troubleshooting", "Root Cause Analysis", "Logical Reasoning", "Design Thinking", "Systems Thinking",
		"Strategic Thinking", "Innovation", "Computational Thinking", "Research", "Investigation",
		"Scientific Method",
	}},
	{Name: "adaptability", Items: []string{
		"Flexibility", "Learning Agility", "Resilience", "Change Management", "Stress Management",
		"Crisis Management", "Adaptability to New Technologies", "Cultural Adaptability", "Work-Life Balance",
		"Resourcefulness", "Versatility", "Open-mindedness", "Improvisation", "Coping with Uncertainty",
		"Growth Mindset",
	}},
	{Name: "work_ethic", Items: []string{
		"Time Management", "Organization", "Attention to Detail", "Self-motivation", "Initiative", "Reliability",
		"Punctuality", "Accountability", "Persistence", "Discipline", "Goal Setting", "Prioritization",
		"Quality Focus", "Efficiency", "Work Independence", "Productivity", "Professional Ethics",
		"Conscientiousness",
	}},
	{Name: "leadership", Items: []string{
		"Strategic Vision", "Decision Making", "Team Building", "Delegation", "People Management",
		"Performance Management", "Emotional Intelligence", "Influence", "Motivation", "Empowerment",
		"Conflict Resolution", "Coaching", "Mentoring", "Inspirational Leadership", "Change Leadership",
		"Servant Leadership",
	}},
}

// professionalSkills covers business functions.
var professionalSkills = []Group{
	{Name: "management", Items: []string{
		"Project Management", "Team Leadership", "Strategic Planning", "Budgeting", "Resource Allocation",
		"Performance Management", "Change Management", "Risk Management", "Stakeholder Management",
		"Business Development",
	}},
	{Name: "operations", Items: []string{
		"Process Improvement", "Quality Control", "Supply Chain Management", "Inventory Management", "Logistics",
		"Procurement", "Vendor Management", "Production Planning", "Facilities Management",
		"Operational Efficiency",
	}},
	{Name: "finance", Items: []string{
		"Financial Analysis", "Budgeting", "Forecasting", "Cost Reduction", "P&L Management",
		"Financial Reporting", "Investment Analysis", "Risk Assessment", "Financial Modeling", "Audit",
	}},
	{Name: "marketing", Items: []string{
		"Brand Management", "Market Research", "Campaign Management", "Digital Marketing", "Content Strategy",
		"Social Media Marketing", "SEO/SEM", "Product Marketing", "Marketing Analytics", "Customer Acquisition",
	}},
	{Name: "sales", Items: []string{
		"Lead Generation", "Relationship Building", "Negotiation", "Client Acquisition", "Account Management",
		"Sales Strategy", "CRM", "Business Development", "Solution Selling", "Territory Management",
	}},
}

// jobTitles is grouped by industry.
var jobTitles = []Group{
	{Name: "technology", Items: []string{
		"Software Engineer", "Frontend Developer", "Backend Developer", "Full Stack Developer", "DevOps Engineer",
		"Site Reliability Engineer", "Data Scientist", "Data Engineer", "Machine Learning Engineer",
		"AI Researcher", "Cloud Architect", "Solutions Architect", "Mobile Developer", "iOS Developer",
		"Android Developer", "Game Developer", "QA Engineer", "Test Automation Engineer", "Security Engineer",
		"Cybersecurity Analyst", "Database Administrator", "Network Engineer", "Systems Administrator",
		"IT Support Specialist", "Product Manager", "Project Manager", "Scrum Master", "Agile Coach", "CTO",
		"CIO", "VP of Engineering", "Technical Director", "UX Designer", "UI Designer", "Technical Writer",
	}},
	{Name: "finance", Items: []string{
		"Financial Analyst", "Investment Banker", "Accountant", "Auditor", "Tax Specialist",
		"Financial Controller", "Financial Manager", "Investment Manager", "Portfolio Manager", "Risk Analyst",
		"Credit Analyst", "Compliance Officer", "Financial Advisor", "Insurance Underwriter", "Actuary",
		"Quantitative Analyst", "Financial Planner", "Treasury Analyst", "Equity Research Analyst", "M&A Analyst",
		"CFO", "Finance Director", "Treasurer", "Mortgage Consultant", "Loan Officer", "Banking Associate",
		"Wealth Manager",
	}},
	{Name: "healthcare", Items: []string{
		"Physician", "Surgeon", "Nurse", "Nurse Practitioner", "Physician Assistant", "Medical Technician",
		"Radiologist", "Anesthesiologist", "Pharmacist", "Physical Therapist", "Occupational Therapist",
		"Speech Therapist", "Mental Health Counselor", "Psychologist", "Psychiatrist", "Dietitian",
		"Nutritionist", "Medical Assistant", "Paramedic", "EMT", "Healthcare Administrator", "Medical Director",
		"Clinical Research Associate", "Biostatistician", "Epidemiologist", "Public Health Specialist",
		"Healthcare Consultant",
	}},
	{Name: "marketing", Items: []string{
		"Marketing Manager", "Digital Marketing Specialist", "SEO Specialist", "Content Marketer",
		"Content Strategist", "Social Media Manager", "Brand Manager", "Product Marketing Manager",
		"Market Research Analyst", "Marketing Analyst", "CRM Manager", "Email Marketing Specialist",
		"Growth Hacker", "Conversion Rate Optimizer", "Copywriter", "Creative Director", "Marketing Director",
		"CMO", "Public Relations Specialist", "Communications Manager", "Media Planner", "Advertising Executive",
		"Event Marketing Manager", "Influencer Marketing Manager",
	}},
	{Name: "human_resources", Items: []string{
		"HR Manager", "Recruiter", "Talent Acquisition Specialist", "HR Business Partner",
		"Training and Development Manager", "Learning and Development Specialist",
		"Compensation and Benefits Manager", "HRIS Analyst", "HR Coordinator", "HR Director",
		"Chief People Officer", "Employee Relations Specialist", "Diversity and Inclusion Manager",
		"Organizational Development Consultant", "HR Consultant", "Payroll Specialist", "Human Capital Manager",
		"Workforce Planning Analyst", "Culture Officer", "HR Generalist",
	}},
}

// commonJobTitles lists title variations seen on resumes.
var commonJobTitles = []Group{
	{Name: "software_engineering", Items: []string{
		"Software Engineer", "Software Developer", "Full Stack Developer", "Backend Developer",
		"Frontend Developer", "Mobile Developer", "Web Developer", "DevOps Engineer", "QA Engineer",
		"Test Engineer", "Site Reliability Engineer",
	}},
	{Name: "data_science", Items: []string{
		"Data Scientist", "Data Analyst", "Business Intelligence Analyst", "Machine Learning Engineer",
		"Data Engineer", "AI Specialist", "Research Scientist", "Statistician", "Big Data Engineer",
		"Analytics Manager",
	}},
	{Name: "product", Items: []string{
		"Product Manager", "Product Owner", "Program Manager", "Project Manager", "Business Analyst",
		"Scrum Master", "Agile Coach", "Product Marketing Manager",
	}},
	{Name: "design", Items: []string{
		"UX Designer", "UI Designer", "Product Designer", "Graphic Designer", "Visual Designer",
		"Interaction Designer", "UX Researcher", "Creative Director",
	}},
	{Name: "management", Items: []string{
		"Engineering Manager", "Technical Lead", "CTO", "VP of Engineering", "Director of Engineering",
		"IT Manager", "Department Head", "Team Lead",
	}},
}

// degreeNames maps a degree level key to the spellings that denote it.
var degreeNames = []Group{
	{Name: "high_school", Items: []string{
		"High School Diploma", "GED", "Secondary Education",
	}},
	{Name: "associate", Items: []string{
		"Associate's Degree", "Associate of Arts", "Associate of Science", "AA", "AS",
	}},
	{Name: "bachelor", Items: []string{
		"Bachelor's Degree", "Bachelor of Arts", "Bachelor of Science", "BA", "BS", "B.A.", "B.S.",
	}},
	{Name: "master", Items: []string{
		"Master's Degree", "Master of Arts", "Master of Science", "MBA", "MA", "MS", "M.A.", "M.S.",
	}},
	{Name: "doctorate", Items: []string{
		"Doctorate", "PhD", "Doctor of Philosophy", "MD", "JD", "EdD", "Ph.D.",
	}},
}

var degreeTypes = []string{
	"Bachelor of Science (BS)", "Bachelor of Arts (BA)", "Bachelor of Business Administration (BBA)",
	"Bachelor of Fine Arts (BFA)", "Bachelor of Engineering (BEng)", "Bachelor of Technology (BTech)",
	"Master of Science (MS)", "Master of Arts (MA)", "Master of Business Administration (MBA)",
	"Master of Engineering (MEng)", "Master of Technology (MTech)", "Master of Fine Arts (MFA)",
	"Doctor of Philosophy (PhD)", "Doctor of Medicine (MD)", "Doctor of Education (EdD)", "Juris Doctor (JD)",
	"Associate Degree", "Diploma", "Certificate", "High School Diploma",
	"General Educational Development (GED)",
}

var fieldsOfStudy = []string{
	"Computer Science", "Information Technology", "Software Engineering", "Data Science",
	"Artificial Intelligence", "Machine Learning", "Cybersecurity", "Network Engineering",
	"Business Administration", "Finance", "Accounting", "Economics", "Marketing", "Management",
	"Human Resources", "Mechanical Engineering", "Electrical Engineering", "Civil Engineering",
	"Chemical Engineering", "Biomedical Engineering", "Physics", "Mathematics", "Statistics", "Biology",
	"Chemistry", "Environmental Science", "Psychology", "Sociology", "Communications", "English", "History",
	"Political Science", "International Relations", "Law", "Medicine", "Nursing", "Pharmacy", "Public Health",
	"Education", "Graphic Design", "Fine Arts", "Architecture", "Music", "Theater", "Film Studies",
	"Journalism", "Philosophy",
}

var institutions = []string{
	"Harvard University", "Massachusetts Institute of Technology (MIT)", "Stanford University",
	"University of Oxford", "University of Cambridge", "California Institute of Technology (Caltech)",
	"Princeton University", "Yale University", "University of Chicago", "Columbia University",
	"Johns Hopkins University", "University of Pennsylvania", "ETH Zurich", "University College London",
	"Imperial College London", "University of California, Berkeley", "University of California, Los Angeles",
	"Cornell University", "University of Michigan", "New York University", "Duke University",
	"Northwestern University", "University of Toronto", "McGill University", "University of Edinburgh",
	"King's College London", "University of Tokyo", "National University of Singapore", "Peking University",
	"Tsinghua University", "University of Melbourne", "University of Sydney", "Coursera", "edX", "Udemy",
	"Udacity", "LinkedIn Learning", "Khan Academy", "Pluralsight", "Codecademy", "FreeCodeCamp", "DataCamp",
	"Brilliant", "Skillshare", "MasterClass", "Treehouse", "Simplilearn", "Educative", "Dataquest",
	"360training",
}

var industries = []Industry{
	{
		Name: "technology",
		Subcategories: []string{
			"Software Development", "Information Technology", "Cybersecurity", "Cloud Computing",
			"Artificial Intelligence", "Machine Learning", "Data Science", "Blockchain", "Internet of Things",
			"Robotics", "Quantum Computing", "Virtual Reality", "Augmented Reality", "Telecommunications",
			"Semiconductor", "Electronics", "Biotechnology", "Healthtech", "Fintech", "Edtech", "Cleantech",
			"E-commerce", "Gaming", "Social Media", "Digital Media", "Adtech", "Proptech",
		},
		CommonTerms: []string{
			"SaaS", "PaaS", "IaaS", "API", "SDK", "UI/UX", "Frontend", "Backend", "Full Stack", "DevOps", "CI/CD",
			"Agile", "Scrum", "Kanban", "MVP", "Prototype", "Scalability", "Big Data", "Cloud Native",
			"Containerization", "Microservices", "Digital Transformation", "AI/ML", "Computer Vision", "NLP",
			"Deep Learning", "Neural Networks", "Blockchain", "Cryptocurrency", "Smart Contracts", "IoT",
			"Edge Computing", "5G", "VR/AR",
		},
	},
	{
		Name: "finance",
		Subcategories: []string{
			"Banking", "Investment Banking", "Asset Management", "Wealth Management", "Insurance",
			"Financial Planning", "Financial Analysis", "Investment", "Venture Capital", "Private Equity",
			"Hedge Funds", "Accounting", "Auditing", "Tax Services", "Risk Management", "Compliance", "Securities",
			"Trading", "Fintech", "Cryptocurrency", "Real Estate Finance", "Mortgage Lending",
		},
		CommonTerms: []string{
			"ROI", "IRR", "NPV", "EBITDA", "P/E Ratio", "EPS", "Cash Flow", "Balance Sheet", "Income Statement",
			"Financial Modeling", "Valuation", "Due Diligence", "M&A", "IPO", "Underwriting", "Securities", "Equity",
			"Fixed Income", "Derivatives", "Options", "Futures", "Hedge", "Portfolio Management", "Asset Allocation",
			"Risk Assessment", "Market Analysis", "Financial Reporting", "GAAP", "IFRS",
		},
	},
	{
		Name: "healthcare",
		Subcategories: []string{
			"Hospital Services", "Clinical Care", "Primary Care", "Specialized Care", "Urgent Care",
			"Emergency Medicine", "Surgery", "Radiology", "Pathology", "Oncology", "Cardiology", "Neurology",
			"Pediatrics", "Geriatrics", "Mental Health", "Rehabilitation", "Pharmaceutical", "Medical Devices",
			"Biotechnology", "Health Insurance", "Healthcare IT", "Telemedicine", "Home Healthcare", "Long-term Care",
			"Wellness", "Public Health", "Healthcare Research", "Clinical Trials",
		},
		CommonTerms: []string{
			"Patient Care", "Clinical Trials", "Electronic Health Records (EHR)", "HIPAA Compliance", "Diagnosis",
			"Treatment", "Prognosis", "Prescription", "Medication", "Therapy", "Rehabilitation", "Medical Imaging",
			"Laboratory Testing", "Vital Signs", "Outpatient", "Inpatient", "ICU", "Emergency Room", "Triage",
			"Healthcare Providers", "Value-Based Care", "Preventive Care", "Chronic Disease Management",
			"Population Health", "Telehealth", "Remote Patient Monitoring", "Healthcare Analytics",
		},
	},
	{
		Name: "marketing",
		Subcategories: []string{
			"Digital Marketing", "Content Marketing", "Social Media Marketing", "Email Marketing",
			"Search Engine Optimization (SEO)", "Search Engine Marketing (SEM)", "Paid Advertising",
			"Display Advertising", "Affiliate Marketing", "Influencer Marketing", "Brand Management",
			"Market Research", "Product Marketing", "Event Marketing", "Public Relations", "Communications",
			"Direct Marketing", "Guerrilla Marketing", "Experiential Marketing", "Marketing Analytics",
			"Conversion Rate Optimization", "Customer Relationship Management", "Marketing Automation",
			"Growth Marketing",
		},
		CommonTerms: []string{
			"Brand Awareness", "Brand Equity", "Market Share", "Target Audience", "Demographics", "Psychographics",
			"Customer Segmentation", "Buyer Persona", "Customer Journey", "Funnel Marketing", "CTR", "CPC", "CPM",
			"CPA", "ROAS", "Conversion Rate", "Engagement Rate", "Bounce Rate", "Retention Rate", "CAC", "LTV", "KPI",
			"ROI", "A/B Testing", "Landing Page", "Call to Action (CTA)", "Content Strategy", "SEO", "SEM", "PPC",
			"Social Media Engagement", "Influencer Collaboration",
		},
	},
	{
		Name: "manufacturing",
		Subcategories: []string{
			"Automotive Manufacturing", "Aerospace Manufacturing", "Electronics Manufacturing",
			"Machinery Manufacturing", "Textile Manufacturing", "Food and Beverage Manufacturing",
			"Pharmaceutical Manufacturing", "Chemical Manufacturing", "Plastics Manufacturing", "Metal Manufacturing",
			"Wood Product Manufacturing", "Furniture Manufacturing", "Printing and Related Support",
			"Computer and Electronic Product Manufacturing", "Electrical Equipment Manufacturing",
			"Transportation Equipment Manufacturing", "Apparel Manufacturing", "Paper Manufacturing",
			"Petroleum and Coal Products",
		},
		CommonTerms: []string{
			"Supply Chain", "Production Line", "Assembly Line", "Quality Control", "Quality Assurance",
			"Lean Manufacturing", "Six Sigma", "Just-in-Time (JIT)", "Material Requirements Planning (MRP)",
			"Enterprise Resource Planning (ERP)", "Computer-Aided Design (CAD)", "Computer-Aided Manufacturing (CAM)",
			"Automation", "Robotics", "CNC Machining", "3D Printing", "Additive Manufacturing",
			"Inventory Management", "Procurement", "Bill of Materials", "Work-in-Progress", "Finished Goods",
			"Raw Materials", "Product Lifecycle Management (PLM)", "ISO Standards", "Compliance",
			"Safety Regulations", "Industrial Engineering", "Process Improvement", "Productivity Metrics",
		},
	},
}

var stopwords = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours", "yourself",
	"yourselves", "he", "him", "his", "himself", "she", "her", "hers", "herself", "it", "its", "itself", "they",
	"them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this", "that", "these", "those",
	"am", "is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until", "while", "of", "at",
	"by", "for", "with", "about", "against", "between", "into", "through", "during", "before", "after", "above",
	"below", "to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "any", "both", "each", "few", "more", "most",
	"other", "some", "such", "no", "nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now", "d", "ll", "m", "o", "re", "ve", "y",
	"ain", "aren", "aren't", "couldn", "couldn't", "didn", "didn't", "doesn", "doesn't", "hadn", "hadn't",
	"hasn", "hasn't", "haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn", "mustn't",
	"needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn", "wasn't", "weren", "weren't", "won",
	"won't", "wouldn", "wouldn't",
}

var certificationPatterns = []string{
	`certified\s+\w+`,
	`\w+\s+certification`,
	`\w+\s+certified`,
	`certificate\s+in\s+\w+`,
	`\b[A-Z]{2,}(?:\-[A-Z]+)*\b`,
	`\b(?:AWS|Azure|Google Cloud|PMP|CISSP|CCNA|MCSE|CompTIA|CPA|CFA|PMI|ITIL|CISA|CRISC)\b`,
}

var entityPatterns = map[string]string{
	"email": `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`,
	"phone": `\b(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`,
	"url": `https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+[/\w\.-]*\??[/\w\.-=&%\+]*`,
	"date": `\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]* \d{1,2},? \d{4}\b|\b\d{1,2}[/.-]\d{1,2}[/.-](?:\d{2}|\d{4})\b|\b(?:19|20)\d{2}\b`,
	"salary": `\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?(?:\s*(?:per|a|\/)\s*(?:year|yr|annual|annum|month|mo|week|wk|hour|hr))?|\b\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?(?:\s*(?:GBP|EUR|USD|AUD|CAD|JPY|CHF))?(?:\s*(?:per|a|\/)\s*(?:year|yr|annual|annum|month|mo|week|wk|hour|hr))?`,
}
