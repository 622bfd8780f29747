package locked

import (
	"sync"

	"github.com/randalmurphal/locktext/pkg/locktext/registry"
)

// builtinEntries is the locked bullet table. Wording must match the
// published profile exactly; edit text only when the source of record changes.
//
// Freefly bullet 1 (freefly.0) stays customizable and is deliberately absent.
var builtinEntries = map[string]string{
	// Freefly Systems, bullets 2-4.
	"freefly.1": "Contributed to drone platform codebases implementing new features and optimizations for flight control systems and payload integration across multiple product lines, managed software integration projects from planning through release",
	"freefly.2": "Led release management for drone platforms overseeing testing phases from alpha through production deployment, coordinating firmware updates and executing comprehensive testing protocols with cross-functional teams",
	"freefly.3": "Built automated systems to process complex technical data and identify system failures, developing knowledge base enhancements and support tools that streamlined operations",

	// Lumenier.
	"lumenier.0": "Wrote embedded code in C++ to integrate LiDAR and optical flow sensors for obstacle avoidance and position holding with/without GPS under various lighting conditions",
	"lumenier.1": "Collaborated with open-source flight control software maintainers for integration, testing, and deployment of autonomous flight algorithms, prototyped innovative features like toss-to-launch for product roadmap development",

	// York Exponential.
	"york.0": "Developed prototype software for in-house autonomous surveillance mobile robots using ROS2, SLAM, and computer vision technologies",
	"york.1": "Built Human Machine Interface for Universal Robot welding applications using Python and Kivy framework, implemented multi-robot control systems with platform independence",

	// Role-specific variants of Freefly bullet 1.
	"freefly.ai_engineer":       "Built and deployed GenAI-powered agent for automated log analysis from concept to production, integrating foundation model APIs (Ollama, Llama 3.2) with evaluation frameworks and model governance practices, serving 200+ daily queries",
	"freefly.software_product": "Developed comprehensive diagnostic and analysis tools for engineering teams, independently designed and built AI-powered diagnostic tool using Python and modern LLM frameworks from requirements to production, improving customer self-service capabilities and team response times by 40%",
}

var builtin = sync.OnceValue(func() *registry.Registry[string, string] {
	return registry.New(builtinEntries)
})

// Builtin returns the process-wide locked template registry.
// The same instance is returned on every call.
func Builtin() *registry.Registry[string, string] {
	return builtin()
}
