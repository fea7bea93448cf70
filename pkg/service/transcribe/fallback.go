package transcribe

// FallbackTranscript is the canned demonstration transcript returned when
// the transcription provider is unavailable. It keeps the rest of the
// application usable in demo mode.
const FallbackTranscript = "Doctor: Good morning, how are you feeling today?\n\n" +
	"Patient: I've been having this persistent cough and fever for about a week now. It started with just a sore throat.\n\n" +
	"Doctor: I see. Have you been taking any medication for it?\n\n" +
	"Patient: Just some over-the-counter cough syrup and acetaminophen for the fever.\n\n" +
	"Doctor: Any chest pain or difficulty breathing?\n\n" +
	"Patient: Sometimes I feel a bit tight in my chest, especially when coughing. And I get winded easily.\n\n" +
	"Doctor: Let me examine you. Your temperature is 100.4°F, which is elevated. Your blood pressure is 125/82, which is normal. Let me listen to your lungs.\n\n" +
	"Doctor: I can hear some wheezing in your lower right lung. Have you had any similar symptoms in the past?\n\n" +
	"Patient: I did have bronchitis last winter, but it didn't last this long.\n\n" +
	"Doctor: Based on your symptoms and examination, it appears you have an acute bronchitis, possibly with a bacterial component. I'll prescribe an antibiotic, and you should continue with the cough suppressant.\n\n" +
	"Patient: How long will it take to get better?\n\n" +
	"Doctor: With the medication, you should start feeling improvement in 2-3 days. The cough might persist for up to 2 weeks. I'd like you to come back if you're not feeling better after 5 days, or if symptoms worsen."
