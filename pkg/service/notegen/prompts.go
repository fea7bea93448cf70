package notegen

import (
	"fmt"

	"github.com/intellimed/scribe/pkg/domain/model"
	"github.com/intellimed/scribe/pkg/domain/types"
)

const (
	chartSummaryPrompt = "You are a medical specialist tasked with creating concise chart summaries from SOAP notes. " +
		"Create a brief, informative summary of the patient's condition, key findings, and plan in a format suitable " +
		"for quick reference by healthcare providers."

	clinicalGuidelinesPrompt = "You are a medical specialist with expertise in clinical guidelines and best practices. " +
		"Analyze the provided SOAP notes and compare the assessment and plan against current clinical guidelines. " +
		"Provide feedback on adherence to guidelines, potential improvements, or alternative approaches based on " +
		"standard medical practices."

	medicalCodesPrompt = "You are a medical coding specialist with expertise in CPT and ICD-10 coding. " +
		"Based on the provided SOAP notes, suggest appropriate CPT and ICD-10 codes with brief explanations for why " +
		"each code is applicable. Format your response in a clear, structured manner."
)

// soapSystemPrompt builds the SOAP generation instruction. Format and detail
// shape the text only; the structural contract of the call is fixed.
func soapSystemPrompt(format types.NoteFormat, detail types.NoteDetail) string {
	formatInstruction := "Format the content as well-structured paragraphs."
	if format.Normalize() == types.NoteFormatBullets {
		formatInstruction = "Format the content as bulleted lists for better readability."
	}

	detailInstruction := "Provide comprehensive, detailed information in each section."
	if detail.Normalize() == types.NoteDetailConcise {
		detailInstruction = "Keep the content concise and focused on the most important information."
	}

	return fmt.Sprintf("You are a medical documentation specialist trained to create comprehensive SOAP notes "+
		"from doctor-patient conversation transcripts. Your task is to generate accurate, well-structured medical "+
		"notes with appropriate medical terminology. %s %s Format the output as a JSON object with four sections: "+
		"subjective (patient's reported symptoms and history), objective (examination findings), assessment "+
		"(diagnosis and clinical reasoning), and plan (treatment recommendations and next steps).",
		formatInstruction, detailInstruction)
}

// renderSections flattens a SOAP note into the text block attached to
// secondary-generation prompts
func renderSections(sections model.SOAPSections) string {
	return fmt.Sprintf("Subjective: %s\nObjective: %s\nAssessment: %s\nPlan: %s",
		sections.Subjective, sections.Objective, sections.Assessment, sections.Plan)
}
