// Package content serves the static sections of the clinic site.
package content

import "cemdon/pkg/model"

var specialties = []model.Specialty{
	{ID: "nutricion", Title: "Nutrición", Description: "Planes personalizados basados en tu metabolismo y objetivos."},
	{ID: "mindfulness", Title: "Mindfulness", Description: "Técnicas de meditación y manejo del estrés."},
	{ID: "cardiologia", Title: "Cardiología", Description: "Monitoreo cardíaco y prevención de enfermedades."},
	{ID: "medicina", Title: "Medicina Preventiva", Description: "Chequeos integrales y detección temprana."},
	{ID: "fitness", Title: "Fitness Médico", Description: "Ejercicio adaptado a tu condición de salud."},
	{ID: "sueno", Title: "Salud del Sueño", Description: "Optimiza tu descanso para mejor rendimiento."},
}

var processSteps = []model.ProcessStep{
	{ID: "diagnostico", Number: 1, Title: "Diagnóstico Integral", Description: "Evaluamos tu estado de salud actual con estudios completos y una consulta detallada con nuestro equipo médico."},
	{ID: "plan", Number: 2, Title: "Plan Personalizado", Description: "Diseñamos un programa único basado en tus objetivos, preferencias y condiciones de salud específicas."},
	{ID: "implementacion", Number: 3, Title: "Implementación", Description: "Te acompañamos paso a paso en la adopción de nuevos hábitos, con recetas, rutinas y apoyo constante."},
	{ID: "seguimiento", Number: 4, Title: "Seguimiento", Description: "Monitoreamos tu progreso con métricas claras, ajustando el plan según tus resultados y necesidades."},
	{ID: "optimizacion", Number: 5, Title: "Optimización", Description: "Refinamos continuamente tu programa para mantener resultados sostenibles y mejorar tu calidad de vida."},
}

var staff = []model.StaffMember{
	{ID: 1, Name: "Dra. María García", Specialty: "Nutrición Clínica", Bio: "Especialista en metabolismo y nutrición deportiva con 15 años de experiencia."},
	{ID: 2, Name: "Dr. Carlos Mendoza", Specialty: "Medicina Interna", Bio: "Experto en medicina preventiva y diagnóstico integral."},
	{ID: 3, Name: "Lic. Ana Rodríguez", Specialty: "Mindfulness & Bienestar", Bio: "Certificada en MBSR y técnicas de reducción de estrés."},
	{ID: 4, Name: "Dr. Roberto Silva", Specialty: "Cardiología", Bio: "Especialista en prevención cardiovascular y rehabilitación cardíaca."},
	{ID: 5, Name: "Lic. Laura Torres", Specialty: "Fitness Médico", Bio: "Especializada en ejercicio terapéutico y recuperación funcional."},
}

var testimonials = []model.Testimonial{
	{Name: "Carolina M.", Age: 34, Achievement: "Perdió 15 kg en 6 meses", Quote: "CEMDON cambió mi relación con la comida. No es solo una dieta, es un estilo de vida que puedo mantener para siempre."},
	{Name: "Roberto G.", Age: 52, Achievement: "Controló su diabetes tipo 2", Quote: "Gracias al seguimiento constante con la app y mi equipo médico, mis niveles de glucosa están mejor que nunca."},
	{Name: "María José L.", Age: 28, Achievement: "Superó su ansiedad", Quote: "Las sesiones de mindfulness y el apoyo integral me ayudaron a manejar mi estrés de una manera que nunca imaginé."},
}

var articles = []model.Article{
	{Category: "Nutrición", Title: "5 alimentos que transforman tu metabolismo", Excerpt: "Descubre cómo pequeños cambios en tu dieta pueden acelerar tu metabolismo naturalmente.", ReadMinutes: 4},
	{Category: "Mindfulness", Title: "La técnica de respiración que reduce el estrés en 5 minutos", Excerpt: "Aprende la técnica 4-7-8 respaldada por la ciencia para calmar tu mente.", ReadMinutes: 3},
	{Category: "Prevención", Title: "Chequeos médicos: cuándo y por qué hacerlos", Excerpt: "Una guía completa sobre los exámenes preventivos según tu edad.", ReadMinutes: 6},
}

var notifications = []model.AppNotification{
	{Icon: "🥗", Title: "Tip del día", Message: "Añade más fibra a tu desayuno", When: "Ahora"},
	{Icon: "💧", Title: "Recordatorio", Message: "Es hora de hidratarte", When: "5 min"},
	{Icon: "🏃", Title: "Meta cumplida!", Message: "10,000 pasos alcanzados", When: "1 hora"},
}

var clinic = model.ClinicInfo{
	Name:    "CEMDON",
	Address: "San Francisco, Córdoba",
	Hours:   "Lun - Vie: 8 - 20hs",
	Phone:   "+54 3564 12-3456",
	Email:   "contacto@cemdon.com",
}
