package reply

import "regexp"

// sniffer is one entry in the off-topic cascade: a predicate over the
// raw message and the handler that answers it.
type sniffer struct {
	re      *regexp.Regexp
	respond func(g *Generator) Response
}

func redirect(text string) func(g *Generator) Response {
	return func(g *Generator) Response {
		return Response{
			Text:        text,
			Suggestions: []string{"What are his skills?", "Show me his projects"},
		}
	}
}

// fallbackSniffers is evaluated in order; the FIRST matching entry
// fires and the rest are skipped. Reordering entries changes behavior
// (e.g. the bare yes/no check must come after the topical checks so
// "no news please" still hits the news entry).
var fallbackSniffers = []sniffer{
	{regexp.MustCompile(`(?i)\b(weather|forecast|raining|sunny)\b`),
		redirect("I don't do weather — strictly a portfolio assistant. I'm much better with questions about skills and projects.")},
	{regexp.MustCompile(`(?i)\b(what time|current time|time is it)\b`),
		redirect("No clock on me, sorry. I can tell you how many years of experience are on this page, though.")},
	{regexp.MustCompile(`(?i)\b(news|headlines|current events)\b`),
		redirect("I don't follow the news. The only headlines I know are project names.")},
	{regexp.MustCompile(`(?i)\b(are you (a |an )?(robot|bot|ai|human)|chatgpt|gpt)\b`),
		redirect("I'm a small rule-based assistant — no AI model behind me, just patterns and a knowledge base about this portfolio.")},
	{regexp.MustCompile(`(?i)\b(joke|funny|make me laugh)\b`),
		redirect("My humor module shipped without tests and it shows. Project questions are more my thing.")},
	{regexp.MustCompile(`(?i)\b(food|hungry|pizza|recipe|restaurant)\b`),
		redirect("Food advice is outside my diet. Tech stack questions, on the other hand...")},
	{regexp.MustCompile(`(?i)\b(advice|should i|what do you think i)\b`),
		redirect("I'd rather not give life advice — but if the question is about hiring a full-stack developer, I have opinions.")},
	{regexp.MustCompile(`(?i)(\d+\s*[-+*/]\s*\d+|calculate|math)`),
		redirect("I only count years of experience and lines of code. For real math, a calculator will serve you better.")},
	{regexp.MustCompile(`(?i)\b(where (do you|does he) live|located|location|time ?zone)\b`),
		redirect("He's based in Munich, Germany, and works with clients remotely across time zones.")},
	{regexp.MustCompile(`(?i)\b(hola|bonjour|ciao|hallo|privet|konnichiwa|ni hao)\b`),
		redirect("Hello! I only speak English, but I'm happy to talk about the portfolio in it.")},
	{regexp.MustCompile(`(?i)\b(how old|your age|his age)\b`),
		redirect("Age isn't in my knowledge base — experience is. Seven years of it, if that helps.")},
	{regexp.MustCompile(`(?i)\b(salary|how much (do you|does he) (make|earn))\b`),
		redirect("Compensation isn't something I share. Project rates are a conversation for the contact form.")},
	{regexp.MustCompile(`(?i)\b(hobby|hobbies|free time|fun)\b`),
		redirect("Off the clock it's mostly bouldering and tinkering with side projects — some of which ended up in this portfolio.")},
	{regexp.MustCompile(`(?i)\b(speak|spoken languages?|bilingual)\b`),
		redirect("Human languages: English and German. Programming languages: quite a few more — ask about the stack.")},
	{regexp.MustCompile(`(?i)\b(work(ing)? hours|office hours|when (do you|does he) work)\b`),
		redirect("Schedules are flexible and remote-friendly. Specifics are best sorted out directly via the contact form.")},
	{regexp.MustCompile(`(?i)\b(better than|versus|vs\.?|compare)\b`),
		redirect("I try not to start framework wars. I can tell you what he uses and why it fits each project.")},
	{regexp.MustCompile(`(?i)\b(you('re| are) (great|awesome|cool|smart|amazing)|good bot|nice bot)\b`),
		redirect("Aw, thanks! I'll pass the compliment to whoever wrote my pattern table.")},
	{regexp.MustCompile(`(?i)^\s*(yes|no|yeah|nope|maybe)[\s.!]*$`),
		redirect("Hmm, I lost the thread. What would you like to know — skills, projects, or experience?")},
	{regexp.MustCompile(`(?i)\b(help|confused|stuck|how does this work)\b`),
		redirect("Happy to help! Ask me things like \"what are his skills\", \"show me his projects\", or \"is he available for hire\".")},
}

// fallback runs the ordered topic cascade over the raw message and, if
// nothing matches, returns a randomized apology-plus-redirect.
func (g *Generator) fallback(message string) Response {
	for _, s := range fallbackSniffers {
		if s.re.MatchString(message) {
			return s.respond(g)
		}
	}
	return Response{
		Text: g.choose(
			"I'm not sure I caught that — I'm a simple assistant focused on this portfolio. Try asking about skills, projects, or experience.",
			"That one's beyond my pattern table, sorry! Skills, projects, experience, and contact info are my specialty.",
			"Hmm, I didn't understand that. I'm best at questions about what he's built and what he can do.",
		),
		Suggestions: []string{"What are his skills?", "Show me his projects", "How can I contact him?"},
	}
}
