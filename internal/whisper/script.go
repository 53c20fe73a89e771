package whisper

const workerScript = `
import json
import sys

from faster_whisper import WhisperModel


def emit(payload):
    sys.stdout.write(json.dumps(payload) + "\n")
    sys.stdout.flush()


def main():
    if len(sys.argv) < 9:
        raise SystemExit(
            "usage: <model> <compute_type> <language> <chunk_length>"
            " <beam_size> <min_silence_ms> <vad 0|1> <initial_prompt>"
        )
    model_name, compute_type, lang, chunk, beam, silence, vad, prompt = sys.argv[1:9]

    model = WhisperModel(model_name, compute_type=compute_type)
    emit({"event": "ready"})

    for line in sys.stdin:
        path = line.strip()
        if not path:
            continue
        try:
            segments, info = model.transcribe(
                path,
                task="transcribe",
                language=lang,
                chunk_length=int(chunk),
                beam_size=int(beam),
                condition_on_previous_text=False,
                vad_filter=vad == "1",
                vad_parameters={"min_silence_duration_ms": int(silence)},
                initial_prompt=prompt or None,
                word_timestamps=False,
            )
            emit({"event": "start", "duration": float(info.duration or 0.0)})
            for segment in segments:
                emit(
                    {
                        "event": "segment",
                        "start": float(segment.start),
                        "end": float(segment.end),
                        "text": segment.text,
                    }
                )
            emit({"event": "end"})
        except Exception as exc:
            emit({"event": "error", "message": str(exc)})


if __name__ == "__main__":
    main()
`
