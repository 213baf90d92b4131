package generative

import (
	_ "embed"
	"fmt"

	"github.com/dassigner/studio/src/dassigner/entity"
)

const (
	_serviceAPI      = "Gemini API"
	_serviceClient   = "Gemini Client"
	_serviceChat     = "Gemini Chat Service"
	_serviceEnhance  = "Gemini Enhance Service"
	_serviceConvert  = "Gemini Convert Service"
	_suggestionCount = 6
)

//go:embed system_instruction.txt
var _systemInstruction string

// DefaultPrompts is returned by SuggestPrompts whenever the model cannot provide suggestions.
var DefaultPrompts = []string{
	"A modern hero section for a SaaS platform with gradient backgrounds, animated elements, and a compelling call-to-action",
	"An elegant pricing table with hover effects, popular plan highlighting, and modern card design",
	"A sleek team section with profile cards, social links, and smooth animations",
	"A contemporary contact form with modern input styling, validation states, and interactive elements",
	"A feature showcase section with icons, descriptions, and subtle animations",
	"A testimonials carousel with customer photos, ratings, and smooth transitions",
}

const _enhanceTemplate = `You are a creative director AI. Your task is to take a user's simple design prompt and expand it into a rich, detailed, and descriptive prompt that will inspire a world-class web designer.

Add details about:
- Color palettes and visual themes
- Typography choices and hierarchy
- Layout structure and components
- Interactive elements and animations
- Overall mood and user experience
- Accessibility considerations
- Modern design trends

Keep the enhanced prompt focused and actionable. Respond with ONLY the new prompt.

User's prompt: "%s"`

const _convertTemplate = `You are an expert web developer specializing in modern JavaScript frameworks. Convert the following HTML code with Tailwind CSS into a single, clean, and functional %s component.

Framework-specific requirements:
%s

Important notes:
- Maintain all Tailwind CSS classes exactly as they are
- Preserve all functionality and styling
- Add proper TypeScript types if applicable
- Include necessary imports
- Make the component self-contained and functional
- Handle any inline SVGs properly
- Convert any form elements to framework-appropriate patterns

Your response MUST be ONLY the code for the component file. Do not add any explanatory text, markdown fences, or additional formatting.

HTML to convert:
%s`

var _frameworkInstructions = map[entity.ConversionTarget]string{
	entity.TargetReact: `- Use functional components with hooks (useState, useEffect, etc.)
- Import React and necessary hooks at the top
- Use JSX syntax with proper className instead of class
- Handle events with proper React event handlers
- Use React patterns for state management
- Ensure proper prop types and default values`,
	entity.TargetVue: `- Use the Composition API within a <script setup> block
- Import ref, reactive, and other composables from 'vue'
- Use proper Vue template syntax
- Handle events with Vue event handlers (@click, @submit, etc.)
- Use Vue patterns for reactivity
- Ensure proper props definition and default values`,
}

const _suggestPrompt = `Generate 6 concise, creative, and diverse UI/web design prompts. The prompts should be suitable for generating modern web components or landing page sections.

Requirements:
- Each prompt should be 1-2 sentences
- Include varied themes (business, creative, tech, lifestyle, etc.)
- Specify modern design elements (animations, gradients, cards, etc.)
- Make them inspiring and actionable
- Focus on contemporary web design trends

Return only a JSON array of strings.`

const _componentTemplate = "Based on the previous HTML, now add the following component or change: %s. The previous HTML was:\n\n```html\n%s\n```"

// ComponentPrompt embeds the previous markup into a component-mode request.
func ComponentPrompt(prompt string, previous string) string {
	return fmt.Sprintf(_componentTemplate, prompt, previous)
}

func enhancePrompt(prompt string) string {
	return fmt.Sprintf(_enhanceTemplate, prompt)
}

func convertPrompt(markup string, target entity.ConversionTarget) string {
	return fmt.Sprintf(_convertTemplate, target, _frameworkInstructions[target], markup)
}
