package lexicon

// TitleHeads are the nouns a job title ends with.
var TitleHeads = []string{
	"Engineer", "Developer", "Programmer", "Manager", "Intern", "Internship", "Trainee",
	"Analyst", "Consultant", "Designer", "Architect", "Scientist", "Specialist", "Lead",
	"Director", "Officer", "Administrator", "Assistant", "Coordinator", "Executive",
	"Technician", "Researcher", "Associate", "Tester", "Accountant", "Auditor", "Supervisor",
	"Head", "President", "Vice President", "Founder", "Co-Founder", "Owner", "Advisor",
	"Representative", "Strategist", "Planner", "Instructor", "Lecturer", "Tutor", "Teacher",
	"Editor", "Writer", "Clerk", "Secretary", "Receptionist", "Nurse", "Pharmacist",
	"Chemist", "Operator", "Controller", "Partner", "Programme Manager", "Product Owner",
	"Scrum Master", "CEO", "CTO", "CFO", "COO",
}

// TitleModifiers may precede a title head.
var TitleModifiers = []string{
	"Senior", "Sr", "Sr.", "Junior", "Jr", "Jr.", "Principal", "Staff", "Chief", "Lead",
	"Associate", "Assistant", "Graduate", "Management", "Executive", "Technical", "Head",
	"Software", "Data", "Backend", "Back-End", "Back End", "Frontend", "Front-End", "Front End",
	"Full Stack", "Full-Stack", "Fullstack", "Web", "Mobile", "iOS", "Android", "Cloud", "DevOps",
	"Site Reliability", "Systems", "System", "Network", "Security", "Cybersecurity", "QA",
	"Quality Assurance", "Test", "Automation", "Machine Learning", "ML", "AI", "Research",
	"Business", "Product", "Project", "Program", "Operations", "Marketing", "Digital", "Sales",
	"Account", "Financial", "Finance", "Audit", "Tax", "HR", "Human Resources", "Talent",
	"Recruitment", "Customer Service", "Customer Success", "Support", "IT", "Technology",
	"Application", "Solutions", "Database", "Infrastructure", "Platform", "Embedded",
	"Electrical", "Mechanical", "Civil", "Chemical", "Process", "Manufacturing", "Production",
	"Design", "Graphic", "UI", "UX", "UI/UX", "Content", "Communications", "Legal",
	"Administrative", "Admin", "Teaching", "Engineering", "Analytics", "Intelligence",
	"Creative", "Brand", "Social Media", "Procurement", "Supply Chain", "Logistics",
	"Industrial", "Practical", "Summer", "Part-Time", "Part Time", "Freelance", "Volunteer",
	"Trainee", "Intern", "Principal", "Regional", "General", "Managing",
}

// TitleBlacklist are words that show the matcher fired on description text.
var TitleBlacklist = []string{
	"Providing", "Provided", "Supported", "Supporting", "Responsible", "Managed",
	"Developed", "Developing", "Worked", "Working", "Assisted", "Assisting", "Handled",
	"Handling", "Collaborated", "Collaborating", "Led", "Leading", "Built", "Building",
	"Created", "Designed", "Implemented", "Maintained", "Ensured", "Conducted", "Prepared",
	"Liaised", "Coordinated", "With", "For", "The", "Our", "Various", "Including",
}

// SingleWordTitles are the only heads accepted without a modifier.
var SingleWordTitles = []string{"Intern", "Manager", "Engineer"}
