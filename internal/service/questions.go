package service

import "github.com/jcpachecoh/cbtw-recruitment/internal/domain"

// questionBank es el banco estatico de preguntas para entrevistas backend.
var questionBank = []domain.Question{
	{ID: 0, Type: "Backend", Seniority: domain.SeniorityJunior, Topic: "Node", Question: "What is a closure?"},
	{ID: 1, Type: "Backend", Seniority: domain.SeniorityJunior, Topic: "Soft Skill", Question: "Do you know what grooming is?"},
	{ID: 2, Type: "Backend", Seniority: domain.SeniorityJunior, Topic: "Tests", Question: "Show the unit tests of the project; if there are none, name two antipatterns when developing unit tests."},
	{ID: 3, Type: "Backend", Seniority: domain.SeniorityJunior, Topic: "Node", Question: "Show in the code the difference between a Promise and a callback."},
	{ID: 4, Type: "Backend", Seniority: domain.SeniorityJunior, Topic: "Node", Question: "What is an enum?"},
	{ID: 5, Type: "Backend", Seniority: domain.SeniorityIntermediate, Topic: "Architecture", Question: "What architecture did you use in the project (MVC, microservices, layered, clean)?"},
	{ID: 6, Type: "Backend", Seniority: domain.SeniorityIntermediate, Topic: "Architecture", Question: "How do you manage packages in your project?"},
	{ID: 7, Type: "Backend", Seniority: domain.SeniorityIntermediate, Topic: "Node", Question: "What is the verb PUT for, and how does it differ from PATCH?"},
	{ID: 8, Type: "Backend", Seniority: domain.SeniorityIntermediate, Topic: "Databases", Question: "When would you pick a document store over a relational database?"},
	{ID: 9, Type: "Backend", Seniority: domain.SenioritySenior, Topic: "Architecture", Question: "How would you design the service to scale horizontally? What state would you need to externalize?"},
	{ID: 10, Type: "Backend", Seniority: domain.SenioritySenior, Topic: "Security", Question: "Walk through a password reset flow: where are tokens stored and what can go wrong?"},
	{ID: 11, Type: "Backend", Seniority: domain.SenioritySenior, Topic: "Operations", Question: "A deploy doubled p99 latency. How do you find the regression?"},
}
