package main

const vsSource = `#version 300 es
	layout (location = 0) in vec4 aVertexPosition;
	layout (location = 1) in uint aVertexMaterial;
	uniform mat4 uModelMatrix;
	uniform mat4 uViewMatrix;
	uniform mat4 uProjectionMatrix;
	vec4 worldPosition;
	out highp vec3 vPosition;
	flat out uint vMaterial;

	void main(void) {
		worldPosition = uModelMatrix * aVertexPosition;
		vPosition = worldPosition.xyz;
		vMaterial = aVertexMaterial;
		gl_Position = uProjectionMatrix * uViewMatrix * worldPosition;
	}
`

const fsSource = `#version 300 es
	#define NUM_MATERIALS 41
	#define MAX_LIGHTS 16
	precision highp float;
	in highp vec3 vPosition;
	flat in uint vMaterial;
	uniform mat4 uModelMatrix;
	uniform vec3 uCameraPosition;
	uniform vec3 uColor[NUM_MATERIALS];
	uniform vec3 uEmissive[NUM_MATERIALS];
	// metalness, roughness, opacity
	uniform vec3 uSurface[NUM_MATERIALS];
	uniform vec3 uAmbient;
	uniform vec3 uKeyDirection;
	uniform vec3 uKeyColor;
	uniform vec3 uFillDirection;
	uniform vec3 uFillColor;
	uniform vec3 uSkyColor;
	uniform vec3 uGroundColor;
	uniform int uNumLights;
	uniform vec3 uLightPosition[MAX_LIGHTS];
	uniform vec3 uLightDirection[MAX_LIGHTS];
	uniform vec3 uLightColor[MAX_LIGHTS];
	// distance, cos(outer), cos(inner)
	uniform vec3 uLightCone[MAX_LIGHTS];
	uniform int uTransparentPass;
	out lowp vec4 outColor;

	vec3 toLinear(vec3 c) {
		return pow(c, vec3(2.2));
	}

	void main(void) {
		int m = int(vMaterial);
		vec3 surface = uSurface[m];
		if ((surface.z < 1.0) != (uTransparentPass == 1)) {
			discard;
		}

		vec3 n = normalize(cross(dFdx(vPosition), dFdy(vPosition)));
		vec3 v = normalize(uCameraPosition - vPosition);
		if (dot(n, v) < 0.0) {
			n = -n;
		}
		float shininess = mix(96.0, 2.0, surface.y);
		float specular = 1.0 - surface.y;

		vec3 lit = uAmbient;
		lit += mix(uGroundColor, uSkyColor, 0.5 * n.y + 0.5);
		lit += uKeyColor * max(dot(n, uKeyDirection), 0.0);
		lit += uFillColor * max(dot(n, uFillDirection), 0.0);
		vec3 spec = uKeyColor * pow(max(dot(n, normalize(uKeyDirection + v)), 0.0), shininess);

		for (int i = 0; i < MAX_LIGHTS; i++) {
			if (i >= uNumLights) {
				break;
			}
			vec3 toLight = (uModelMatrix * vec4(uLightPosition[i], 1.0)).xyz - vPosition;
			float d = length(toLight);
			vec3 l = toLight / max(d, 0.0001);
			vec3 cone = uLightCone[i];
			float att = 1.0;
			if (cone.x > 0.0) {
				att = pow(clamp(1.0 - d / cone.x, 0.0, 1.0), 2.0);
			}
			vec3 dir = normalize(mat3(uModelMatrix) * uLightDirection[i]);
			att *= smoothstep(cone.y, cone.z, dot(-l, dir));
			lit += uLightColor[i] * att * max(dot(n, l), 0.0);
			spec += uLightColor[i] * att * pow(max(dot(n, normalize(l + v)), 0.0), shininess);
		}

		vec3 base = toLinear(uColor[m]);
		vec3 c = base * (1.0 - 0.5 * surface.x) * lit + spec * specular * mix(vec3(0.04), base, surface.x);
		c += uEmissive[m];
		outColor = vec4(pow(c, vec3(1.0 / 2.2)), surface.z);
	}
`
