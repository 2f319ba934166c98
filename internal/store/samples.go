package store

// SampleCorpus is the fixed demonstration corpus. Loading it replaces the
// current store contents; ids come from sample position so reloads are
// stable.
var SampleCorpus = []string{
	"The cat sits on the mat",
	"A feline rests on the carpet",
	"Dogs love playing fetch in the park",
	"The puppy chased the ball across the yard",
	"Machine learning turns text into numbers",
	"Neural networks learn patterns from data",
	"The weather today is sunny and warm",
	"Rain is expected later this evening",
}
