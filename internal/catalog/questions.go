package catalog

import "readiness-workers/internal/models"

// staticQuestions is the embedded core question set in presentation order.
var staticQuestions = []models.Question{
	// Strategy and Leadership
	newQuestion("org_strategy_1", "Does the organization have a long-term vision for AI adoption and integration into its business strategy?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_2", "Is this AI strategy aligned with its business objectives?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_3", "Does the strategy include a timeline with clear targets?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_4", "Are senior leaders committed to and actively involved in driving AI adoption within the organization?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_5", "Is there a designated AI champion or leadership team responsible for overseeing AI initiatives?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_6", "Are there initiatives to monitor and track emerging trends in AI research, development, and applications to stay ahead of the curve?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_7", "Is there alignment between the organization's culture and values and the goals and objectives of AI initiatives?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_8", "Are employees across different levels of the organization aware of and aligned with the organization's AI strategy and objectives?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_9", "Is there effective communication and collaboration between different departments or teams involved in AI initiatives?", "Strategy and Leadership", models.PillarStrategy),
	newQuestion("org_strategy_10", "Are there channels for sharing knowledge, updates, and insights across departments to foster cross-functional collaboration?", "Strategy and Leadership", models.PillarStrategy),

	// Culture and Change Management
	newQuestion("org_culture_1", "Is there a culture of innovation and experimentation that supports AI adoption within the organization?", "Culture and Change Management", models.PillarCulture),
	newQuestion("org_culture_2", "Are employees receptive to new technologies and willing to adapt to changes brought by AI?", "Culture and Change Management", models.PillarCulture),
	newQuestion("org_culture_3", "Is there a change management plan in place to address potential resistance to AI adoption and facilitate organizational change?", "Culture and Change Management", models.PillarCulture),
	newQuestion("org_culture_4", "How confident are employees in using AI technologies without fear of job displacement?", "Culture and Change Management", models.PillarCulture),

	// Financial Support
	newQuestion("org_financial_1", "Are there budgeting processes and financial controls in place to track and manage AI-related expenditures?", "Financial Support", models.PillarStrategy),
	newQuestion("org_financial_2", "Does the organization have a funding model (e.g., internal budgets, grants, investors) to sustain AI initiatives over 3-5 years?", "Financial Support", models.PillarStrategy),
	newQuestion("org_financial_3", "Is there a booked budget for the current year for AI investments?", "Financial Support", models.PillarStrategy),

	// Talent and Skills
	newQuestion("org_talent_1", "Does the organization have a sufficient pool of talent with expertise in AI and data science?", "Talent and Skills", models.PillarPeople),
	newQuestion("org_talent_2", "Are employees equipped with the necessary skills and knowledge to work with AI technologies?", "Talent and Skills", models.PillarPeople),
	newQuestion("org_talent_3", "Is there a development plan in place for upskilling or hiring additional talent to support AI initiatives?", "Talent and Skills", models.PillarPeople),
	newQuestion("org_talent_4", "Are there initiatives in place to attract top AI talent, such as recruitment programs, partnerships with educational institutions, or professional development opportunities?", "Talent and Skills", models.PillarPeople),

	// Training and Development
	newQuestion("org_training_1", "Is the organization committed to continuous learning and improvement in AI adoption through ongoing assessment, feedback, and adaptation?", "Training and Development", models.PillarPeople),
	newQuestion("org_training_2", "Are there resources, workshops, or online courses available to help employees understand AI concepts, applications, and implications for their roles?", "Training and Development", models.PillarPeople),
	newQuestion("org_training_3", "Are there forums or platforms for sharing lessons learned and best practices across teams and departments?", "Training and Development", models.PillarPeople),
	newQuestion("org_training_4", "Does the organization provide training to integrate AI tools into daily workflows for non-technical employees?", "Training and Development", models.PillarPeople),

	// Legal, Governance, Regulatory and Ethical Considerations
	newQuestion("org_legal_1", "Does the organization have processes in place to ensure responsible and ethical AI deployment?", "Legal, Governance, Regulatory and Ethical Considerations", models.PillarGovernance),
	newQuestion("org_legal_2", "Does the organization have an ethics committee or oversight body responsible for reviewing and guiding AI projects?", "Legal, Governance, Regulatory and Ethical Considerations", models.PillarGovernance),
	newQuestion("org_legal_3", "Are there mechanisms for monitoring and addressing potential risks and biases associated with AI algorithms?", "Legal, Governance, Regulatory and Ethical Considerations", models.PillarGovernance),
	newQuestion("org_legal_4", "Are there mechanisms for ensuring compliance with relevant laws and regulations throughout the AI lifecycle?", "Legal, Governance, Regulatory and Ethical Considerations", models.PillarGovernance),

	// External Partnerships and Ecosystem
	newQuestion("org_partnerships_1", "Are there partnerships in place to access external data sources or AI tools and technologies?", "External Partnerships and Ecosystem", models.PillarStrategy),
	newQuestion("org_partnerships_2", "Does the organization participate in industry collaborations, partnerships, or consortia to exchange knowledge, share best practices, and drive collective progress in AI adoption?", "External Partnerships and Ecosystem", models.PillarStrategy),
	newQuestion("org_partnerships_3", "Is the organization part of any AI ecosystems or industry consortia that facilitates knowledge sharing and collaboration?", "External Partnerships and Ecosystem", models.PillarStrategy),
	newQuestion("org_partnerships_4", "Does the organization have processes in place for selecting and managing AI vendors and suppliers?", "External Partnerships and Ecosystem", models.PillarStrategy),

	// Implementation
	newQuestion("org_implementation_1", "Are there integration challenges with existing systems or processes that need to be addressed for seamless AI adoption?", "Implementation", models.PillarStrategy),
	newQuestion("org_implementation_2", "Is there a governance framework in place to oversee AI initiatives and ensure alignment with organizational goals and values?", "Implementation", models.PillarStrategy),
	newQuestion("org_implementation_3", "Does the organization have processes in place to capture and document knowledge gained from AI initiatives, including lessons learned and best practices?", "Implementation", models.PillarStrategy),
	newQuestion("org_implementation_4", "Does the organization follow agile development practices for AI solutions?", "Implementation", models.PillarStrategy),

	// Cybersecurity & Compliance
	newQuestion("data_security_1", "Are there policies and measures in place to protect sensitive data, prevent unauthorized access, and comply with data protection regulations, such as GDPR or HIPAA?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_2", "Is the infrastructure audited regularly for vulnerabilities?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_3", "Are there mechanisms for data anonymization, encryption, and access control to protect against unauthorized access or breaches?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_4", "Are there measures to ensure digital security and resilience against cyber threats?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_5", "Are there cybersecurity protocols, incident response plans, and employee training programs to protect AI systems, data assets, and critical infrastructure from cyber attacks?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_6", "How secure is the infrastructure from cyber threats (e.g., encryption, firewalls, identity management)?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_7", "Does the company have the necessary software tools for AI/ML development (e.g., TensorFlow, PyTorch, Scikit-learn)?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_8", "Are there cybersecurity safeguards specifically designed for AI pipelines (e.g., model training, inference stages)?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_9", "Are there testing methodologies for detecting bugs in AI algorithms?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_10", "Are there integrated platforms for AI deployment?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_11", "Are there protocols for model training, testing, evaluation, and iteration to ensure robustness, accuracy, and reliability in real-world scenarios?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_12", "Are there rigorous testing methodologies, validation processes, and quality assurance standards for detecting bugs, errors, or vulnerabilities in AI algorithms, models, or software components?", "Cybersecurity & Compliance", models.PillarData),
	newQuestion("data_security_13", "Does the organization contribute to open source projects or collaborate with industry consortia to advance AI research, innovation, and standardization?", "Cybersecurity & Compliance", models.PillarData),

	// Integration with Legacy Systems
	newQuestion("data_integration_legacy_1", "Are there APIs for AI integration?", "Integration with Legacy Systems", models.PillarData),
	newQuestion("data_integration_legacy_2", "What challenges exist in integrating AI with existing systems?", "Integration with Legacy Systems", models.PillarData),
	newQuestion("data_integration_legacy_3", "How well can AI solutions be integrated with the company's existing IT infrastructure and legacy systems?", "Integration with Legacy Systems", models.PillarData),
	newQuestion("data_integration_legacy_4", "Is the network infrastructure capable of handling high data transfer speeds and low latency for AI workloads?", "Integration with Legacy Systems", models.PillarData),

	// Scalability & Flexibility
	newQuestion("data_scalability_1", "What is the plan for scaling AI operations?", "Scalability & Flexibility", models.PillarData),
	newQuestion("data_scalability_2", "How flexible is the infrastructure?", "Scalability & Flexibility", models.PillarData),
	newQuestion("data_scalability_3", "Is the infrastructure scalable for AI?", "Scalability & Flexibility", models.PillarData),

	// Network & Connectivity
	newQuestion("data_network_1", "Is the network capable of high data speeds?", "Network & Connectivity", models.PillarData),
	newQuestion("data_network_2", "Does the company have a plan for scaling network?", "Network & Connectivity", models.PillarData),

	// Disaster Recovery & Redundancy
	newQuestion("data_disaster_1", "What is the disaster recovery plan for critical AI and data systems?", "Disaster Recovery & Redundancy", models.PillarData),
	newQuestion("data_disaster_2", "Are there redundancies and backups in place for infrastructure supporting AI?", "Disaster Recovery & Redundancy", models.PillarData),
	newQuestion("data_disaster_3", "Is there an AI infrastructure monitoring system in place (e.g., for resource usage, performance, failures)?", "Disaster Recovery & Redundancy", models.PillarData),
	newQuestion("data_disaster_4", "How are maintenance and updates managed?", "Disaster Recovery & Redundancy", models.PillarData),
	newQuestion("data_disaster_5", "Are performance metrics tracked?", "Disaster Recovery & Redundancy", models.PillarData),
	newQuestion("data_disaster_6", "Does the organization use well-defined data processes?", "Disaster Recovery & Redundancy", models.PillarData),

	// Data Quality
	newQuestion("data_quality_1", "Is there a data quality solution in place?", "Data Quality", models.PillarData),
	newQuestion("data_quality_2", "Are there clear targets and measurements to increase data quality?", "Data Quality", models.PillarData),
	newQuestion("data_quality_3", "Is the data stored in a structured format suitable for AI analysis?", "Data Quality", models.PillarData),
	newQuestion("data_quality_4", "Does the organization have labeled datasets available to support AI model training and validation?", "Data Quality", models.PillarData),
	newQuestion("data_quality_5", "Does the organization have access to high-quality data relevant to AI initiatives?", "Data Quality", models.PillarData),
	newQuestion("data_quality_6", "Is the data already usable for training AI models?", "Data Quality", models.PillarData),

	// Data Availability
	newQuestion("data_availability_1", "Is there a common data share agreement or approach?", "Data Availability", models.PillarData),
	newQuestion("data_availability_2", "Is there any data sharing platform or application?", "Data Availability", models.PillarData),
	newQuestion("data_availability_3", "Has the organization successfully eliminated data silos to ensure data availability across departments?", "Data Availability", models.PillarData),

	// Data Consistency
	newQuestion("data_consistency_1", "Does the organization implement standardization protocols to maintain data consistency across systems?", "Data Consistency", models.PillarData),
	newQuestion("data_consistency_2", "Is there a version control system in place to manage data consistency for AI training and operations?", "Data Consistency", models.PillarData),
	newQuestion("data_consistency_3", "Are techniques in place to verify the accuracy of data before its use in AI models?", "Data Consistency", models.PillarData),

	// Data Accuracy
	newQuestion("data_accuracy_1", "Does the organization conduct periodic reviews to assess the historical accuracy of the data used in decision-making?", "Data Accuracy", models.PillarData),
	newQuestion("data_accuracy_2", "Are role-based access controls effectively implemented to restrict data access to authorized personnel only?", "Data Accuracy", models.PillarData),
	newQuestion("data_accuracy_3", "Are techniques in place to verify the accuracy of data before AI use?", "Data Accuracy", models.PillarData),

	// Data Accessibility
	newQuestion("data_accessibility_1", "Can data be easily and promptly retrieved by users as needed?", "Data Accessibility", models.PillarData),
	newQuestion("data_accessibility_2", "Are there repositories for storing and disseminating AI-related information?", "Data Accessibility", models.PillarData),
	newQuestion("data_accessibility_3", "Is there a corporate data compliance audit available?", "Data Accessibility", models.PillarData),

	// Data Compliance
	newQuestion("data_compliance_1", "Is there a data governance framework in place to ensure data quality, security, and compliance?", "Data Compliance", models.PillarData),
	newQuestion("data_compliance_2", "Is there a data protection legal person available?", "Data Compliance", models.PillarData),
	newQuestion("data_compliance_3", "Is the data in silos or is there an integration layer?", "Data Compliance", models.PillarData),

	// Data Integration
	newQuestion("data_integration_1", "Is there a corporate data catalog available?", "Data Integration", models.PillarData),
	newQuestion("data_integration_2", "Is there a data owner per data source defined?", "Data Integration", models.PillarData),
	newQuestion("data_integration_3", "Does the organization maintain detailed records of data lineage?", "Data Integration", models.PillarData),

	// Data Transparency
	newQuestion("data_transparency_1", "Are changes in data management policies communicated transparently to all relevant stakeholders?", "Data Transparency", models.PillarData),

	// Business AI Readiness
	newQuestion("business_ai_1", "How does the organization prioritize user experience and accessibility in its AI-driven products and services?", "Business AI Readiness", models.PillarBusiness),
	newQuestion("business_ai_2", "Are there efforts to design inclusive and user-friendly interfaces, accommodate diverse user needs and preferences, and adhere to accessibility standards?", "Business AI Readiness", models.PillarBusiness),
	newQuestion("business_ai_3", "Does AI enhance the organization's value proposition, customer segments, or revenue streams as per its business model?", "Business AI Readiness", models.PillarBusiness),
	newQuestion("business_ai_4", "Is there any MVP concept which has been done?", "Business AI Readiness", models.PillarBusiness),
	newQuestion("business_ai_5", "Are there concrete business problems that AI can solve?", "Business AI Readiness", models.PillarBusiness),
	newQuestion("business_ai_6", "Are there identified use cases or applications for AI that align with the organization's strategic objectives?", "Business AI Readiness", models.PillarBusiness),

	// Product Readiness
	newQuestion("business_product_1", "Has the company identified use cases for AI pilot projects?", "Product Readiness", models.PillarBusiness),
	newQuestion("business_product_2", "Are there criteria for evaluating the success of these pilot projects?", "Product Readiness", models.PillarBusiness),
	newQuestion("business_product_3", "Do these pilots help in scaling AI practices across the organization?", "Product Readiness", models.PillarBusiness),
	newQuestion("business_product_4", "Are there key performance indicators for pilot projects?", "Product Readiness", models.PillarBusiness),
	newQuestion("business_product_5", "Are there criteria for evaluating the success of these pilot projects?", "Product Readiness", models.PillarBusiness),

	// Business Use Case and ROI
	newQuestion("business_roi_1", "Has the organization conducted a cost-benefit analysis or ROI assessment for potential AI initiatives?", "Business Use Case and ROI", models.PillarBusiness),
	newQuestion("business_roi_2", "Is there a plan for measuring and tracking the impact of AI initiatives on business outcomes?", "Business Use Case and ROI", models.PillarBusiness),
	newQuestion("business_roi_3", "Has the organization conducted a financial feasibility study of AI adoption?", "Business Use Case and ROI", models.PillarBusiness),
	newQuestion("business_roi_4", "Are there projections or forecasts for the economic impact of AI initiatives on revenue, cost savings, or competitive advantage?", "Business Use Case and ROI", models.PillarBusiness),
	newQuestion("business_roi_5", "Are AI initiatives designed to enhance customer experience and engagement across various touchpoints?", "Business Use Case and ROI", models.PillarBusiness),
	newQuestion("business_roi_6", "Are there projections for the economic impact of AI initiatives?", "Business Use Case and ROI", models.PillarBusiness),

	// Customer Centric
	newQuestion("business_customer_1", "Has the organization conducted user research or feedback surveys to understand customer preferences and expectations regarding AI-driven interactions?", "Customer Centric", models.PillarBusiness),
	newQuestion("business_customer_2", "Is there a plan for continuously improving AI-powered products or services based on customer feedback and insights?", "Customer Centric", models.PillarBusiness),
	newQuestion("business_customer_3", "How does the organization leverage AI to enhance its digital marketing and customer engagement strategies?", "Customer Centric", models.PillarBusiness),
	newQuestion("business_customer_4", "Are there personalized marketing campaigns, recommendation engines, chatbots, and other AI-driven tools for delivering targeted content?", "Customer Centric", models.PillarBusiness),
	newQuestion("business_customer_5", "Does the organization have metrics and KPIs in place to measure the performance and impact of AI initiatives?", "Customer Centric", models.PillarBusiness),
	newQuestion("business_customer_6", "How does the organization leverage AI to enhance digital marketing?", "Customer Centric", models.PillarBusiness),

	// Performance
	newQuestion("business_performance_1", "Are there mechanisms for conducting regular reviews and evaluations to assess the effectiveness of AI solutions and make data-driven decisions for improvement?", "Performance", models.PillarBusiness),
	newQuestion("business_performance_2", "Does the organization have mechanisms for monitoring and measuring the performance of AI systems in real-time?", "Performance", models.PillarBusiness),
	newQuestion("business_performance_3", "Has the organization implemented measures to detect and mitigate bias in AI algorithms and decision-making processes?", "Performance", models.PillarBusiness),

	// Transparency
	newQuestion("business_transparency_1", "Are there procedures for auditing AI systems and ensuring fairness, transparency, and accountability in algorithmic outcomes?", "Transparency", models.PillarBusiness),
	newQuestion("business_transparency_2", "Are there mechanisms for conducting algorithmic audits, providing access to model documentation, and facilitating independent reviews?", "Transparency", models.PillarBusiness),
	newQuestion("business_transparency_3", "Are there procedures for auditing AI systems for fairness and transparency?", "Transparency", models.PillarBusiness),
	newQuestion("business_transparency_4", "Does the organization solicit feedback from customers and end-users regarding their experiences with AI-driven products or services?", "Transparency", models.PillarBusiness),

	// Project Management and Governance
	newQuestion("infra_pm_1", "Are there designated project leads or steering committees responsible for decision-making, risk management, and resource allocation?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_2", "Does the organization follow agile development practices to iteratively build, test, and refine AI solutions?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_3", "Are there processes for conducting sprint planning, backlog grooming, and retrospective reviews to improve agility and responsiveness?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_4", "Does the organization have a structured process for collecting and analyzing feedback from AI deployments (e.g., pilot outcomes, user satisfaction)?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_5", "Does the organization have processes to capture knowledge from AI initiatives?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_6", "Does the organization have defined metrics (e.g., time-to-scale, cost estimates) for scaling AI initiatives?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_7", "Does the organization have project management methodologies for AI initiatives?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_8", "Does the organization have a plan for integrating AI with IT infrastructure?", "Project Management and Governance", models.PillarInfrastructure),
	newQuestion("infra_pm_9", "Is there a governance framework to oversee AI initiatives?", "Project Management and Governance", models.PillarInfrastructure),

	// Risk Management
	newQuestion("infra_risk_1", "Are there measures in place to mitigate risks related to data privacy, cybersecurity, and algorithmic bias?", "Risk Management", models.PillarInfrastructure),
	newQuestion("infra_risk_2", "Does the organization have a process for monitoring and responding to security incidents or breaches involving AI systems?", "Risk Management", models.PillarInfrastructure),
	newQuestion("infra_risk_3", "Is the organization equipped to address cybersecurity threats and protect AI systems and data assets from unauthorized access, breaches, or cyberattacks?", "Risk Management", models.PillarInfrastructure),
	newQuestion("infra_risk_4", "Are there protocols for secure data storage, transmission, and processing to safeguard sensitive information used in AI applications?", "Risk Management", models.PillarInfrastructure),
	newQuestion("infra_risk_5", "Has the organization identified potential risks and security vulnerabilities?", "Risk Management", models.PillarInfrastructure),
	newQuestion("infra_risk_6", "Does the organization have a process for responding to security incidents?", "Risk Management", models.PillarInfrastructure),

	// Innovation
	newQuestion("infra_innovation_1", "Are there investments in research and development (R&D), technology scouting, and open innovation to explore emerging technologies and drive digital transformation?", "Innovation", models.PillarInfrastructure),
	newQuestion("infra_innovation_2", "Are there initiatives or incentives for employees to propose innovative AI projects or ideas?", "Innovation", models.PillarInfrastructure),
	newQuestion("infra_innovation_3", "How innovative is the organization in developing AI-driven products and solutions?", "Innovation", models.PillarInfrastructure),
	newQuestion("infra_innovation_4", "Does the organization have a structured pipeline for identifying, prototyping, and deploying AI-driven innovations?", "Innovation", models.PillarInfrastructure),

	// On Premise Readiness
	newQuestion("infra_onprem_1", "Are there sufficient computational resources and storage, GPU, CPU, TPU capacity for AI model development and deployment?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_2", "Is the organization prepared for and respond to potential disasters, emergencies, or crises that may impact AI operations?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_3", "Are there plans for upgrading or expanding AI infrastructure and resources to support future scalability and performance requirements?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_4", "Is the organization equipped to integrate AI solution software with existing systems, applications, and workflows?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_5", "Are there standards or protocols in place to ensure interoperability and compatibility with third-party tools or platforms?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_6", "Are there investments in modern technologies, such as cloud computing, edge computing, IoT, and advanced analytics, to support AI-driven initiatives?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_7", "Are there strategies for modernizing legacy systems, migrating data, and ensuring interoperability between new AI technologies and legacy IT environments?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_8", "Does the company have access to AI-specific hardware (e.g., GPUs, TPUs, FPGAs) to support machine learning and deep learning tasks?", "On Premise Readiness", models.PillarInfrastructure),
	newQuestion("infra_onprem_9", "Does the organization have the necessary IT infrastructure and resources to support AI initiatives?", "On Premise Readiness", models.PillarInfrastructure),

	// Cloud Readiness
	newQuestion("infra_cloud_1", "Are there already cloud applications which the organization is running in a productive environment?", "Cloud Readiness", models.PillarInfrastructure),
	newQuestion("infra_cloud_2", "Is the organization leveraging cloud computing or other scalable platforms for AI development and deployment?", "Cloud Readiness", models.PillarInfrastructure),
	newQuestion("infra_cloud_3", "Does the organization support hybrid integration (e.g., on-premise and cloud) to enable seamless AI deployment?", "Cloud Readiness", models.PillarInfrastructure),

	// AI Tools and Technology
	newQuestion("infra_tools_1", "Does the organization ensure compliance with industry standards and regulations when deploying AI technologies?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_2", "Is the organization prepared to scale AI initiatives across different business units, regions, or customer segments?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_3", "Does the organization ensure the quality and reliability of AI systems and applications?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_4", "Are there considerations for infrastructure scalability, such as cloud computing, edge computing, or distributed computing architectures, to support growing AI workloads?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_5", "Are there efforts to design inclusive and user-friendly interfaces?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_6", "Are there methodologies and best practices the organization follows for developing and validating AI models?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_7", "Are there protocols for model training, testing, and evaluation?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_8", "Are there standards for interoperability with third-party tools?", "AI Tools and Technology", models.PillarInfrastructure),
	newQuestion("infra_tools_9", "Does the organization have a mature MLOps pipeline for automating AI model development, deployment, and monitoring?", "AI Tools and Technology", models.PillarInfrastructure),
}
