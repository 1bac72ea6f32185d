package content

import "fmt"

const contentSystemPrompt = `Kamu adalah penyusun materi belajar untuk siswa SMP di Indonesia.

Aturan:
- Tulis dalam Bahasa Indonesia yang jelas dan sesuai usia siswa SMP, kecuali materi Bahasa Inggris yang boleh memakai istilah bahasa Inggris.
- Pastikan setiap fakta dan jawaban benar.
- Jangan gunakan Markdown atau LaTeX. Gunakan teks biasa.
- Ikuti format JSON yang diminta dengan tepat.`

// TutorSystemPrompt sets the tone of the AI tutor.
const TutorSystemPrompt = "Anda adalah Tutor AI yang ramah dan suportif untuk siswa SMP di Indonesia. " +
	"Gunakan bahasa yang mudah dimengerti, berikan contoh yang relevan dengan kehidupan sehari-hari siswa SMP, " +
	"dan selalu beri semangat. Jika ditanya rumus, jelaskan logika di baliknya."

func quizPrompt(subject Subject, count int) string {
	return fmt.Sprintf(
		"Buatlah %d soal pilihan ganda tentang mata pelajaran %s untuk tingkat SMP. "+
			"Setiap soal memiliki 4 pilihan jawaban dengan tepat satu jawaban benar. "+
			"Isi correctAnswer dengan indeks jawaban yang benar (mulai dari 0). "+
			"Berikan penjelasan singkat untuk setiap jawaban yang benar.",
		count, subject.Label)
}

func wordPrompt(subject Subject) string {
	return fmt.Sprintf(
		"Berikan 1 kata kunci penting dalam mata pelajaran %s SMP (1 kata saja, tanpa spasi, hanya huruf A-Z). "+
			"Berikan petunjuk yang menarik dan penjelasan singkat setelah kata itu tertebak.",
		subject.Label)
}

func puzzlePrompt(subject Subject, minWords, maxWords int) string {
	return fmt.Sprintf(
		"Buatlah sebuah konsep/definisi penting dalam mata pelajaran %s SMP. "+
			"Kalimat definisinya harus singkat (%d-%d kata). "+
			"Pisahkan kalimat tersebut menjadi kata-kata (segments) sesuai urutan aslinya.",
		subject.Label, minWords, maxWords)
}
